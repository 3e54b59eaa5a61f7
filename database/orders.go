package database

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "time"

    "github.com/shopspring/decimal"

    "pagarme-payment-bridge/models"
)

var ErrOrderNotFound = errors.New("order not found")

const queryTimeout = 5 * time.Second

// GetOrderByID loads an order with its billing fields.
func (c *Connection) GetOrderByID(ctx context.Context, orderID int) (*models.Order, error) {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    var (
        o          models.Order
        total      string
        personType sql.NullInt32
        company    sql.NullString
        address2   sql.NullString
        neighbor   sql.NullString
        cpf        sql.NullString
        cnpj       sql.NullString
        sex        sql.NullString
        birthdate  sql.NullString
    )

    err := c.db.QueryRowContext(ctx, `
        SELECT id, order_number, status, total,
               billing_first_name, billing_last_name, billing_company,
               billing_email, billing_phone,
               billing_address_1, billing_number, billing_address_2,
               billing_neighborhood, billing_postcode,
               billing_persontype, billing_cpf, billing_cnpj,
               billing_sex, billing_birthdate
        FROM orders
        WHERE id = ?
    `, orderID).Scan(
        &o.ID, &o.Number, &o.Status, &total,
        &o.Billing.FirstName, &o.Billing.LastName, &company,
        &o.Billing.Email, &o.Billing.Phone,
        &o.Billing.Address1, &o.Billing.Number, &address2,
        &neighbor, &o.Billing.Postcode,
        &personType, &cpf, &cnpj,
        &sex, &birthdate,
    )
    if err == sql.ErrNoRows {
        return nil, ErrOrderNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("error loading order %d: %v", orderID, err)
    }

    o.Total, err = decimal.NewFromString(total)
    if err != nil {
        return nil, fmt.Errorf("invalid total for order %d: %v", orderID, err)
    }

    o.Billing.Company = company.String
    o.Billing.Address2 = address2.String
    o.Billing.Neighborhood = neighbor.String
    o.Billing.PersonType = models.PersonType(personType.Int32)
    o.Billing.CPF = cpf.String
    o.Billing.CNPJ = cnpj.String
    o.Billing.Sex = sex.String
    o.Billing.Birthdate = birthdate.String

    return &o, nil
}

// UpdateStatus moves an order to a new status and records the reason as an
// order note.
func (c *Connection) UpdateStatus(ctx context.Context, orderID int, status, note string) error {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    tx, err := c.db.BeginTx(ctx, nil)
    if err != nil {
        return fmt.Errorf("error starting transaction: %v", err)
    }
    defer tx.Rollback()

    if _, err := tx.ExecContext(ctx, `
        UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?
    `, status, orderID); err != nil {
        return fmt.Errorf("error updating order %d status: %v", orderID, err)
    }

    if note != "" {
        if _, err := tx.ExecContext(ctx, `
            INSERT INTO order_notes (order_id, note, created_at) VALUES (?, ?, NOW())
        `, orderID, note); err != nil {
            return fmt.Errorf("error adding note to order %d: %v", orderID, err)
        }
    }

    return tx.Commit()
}

// AddOrderNote records a note without touching the order status.
func (c *Connection) AddOrderNote(ctx context.Context, orderID int, note string) error {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    _, err := c.db.ExecContext(ctx, `
        INSERT INTO order_notes (order_id, note, created_at) VALUES (?, ?, NOW())
    `, orderID, note)
    if err != nil {
        return fmt.Errorf("error adding note to order %d: %v", orderID, err)
    }
    return nil
}

// PaymentComplete marks an order as paid: sets paid_at, moves it to
// processing and decrements stock for its items. The paid_at guard makes the
// whole operation a no-op when the order was already completed, so a
// duplicate paid notification cannot decrement stock twice.
func (c *Connection) PaymentComplete(ctx context.Context, orderID int) error {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    tx, err := c.db.BeginTx(ctx, nil)
    if err != nil {
        return fmt.Errorf("error starting transaction: %v", err)
    }
    defer tx.Rollback()

    res, err := tx.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, paid_at = NOW(), updated_at = NOW()
        WHERE id = ? AND paid_at IS NULL
    `, models.OrderStatusProcessing, orderID)
    if err != nil {
        return fmt.Errorf("error completing payment for order %d: %v", orderID, err)
    }

    rows, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if rows == 0 {
        // Already paid, nothing else to do.
        return nil
    }

    if _, err := tx.ExecContext(ctx, `
        UPDATE products p
        JOIN order_items i ON i.product_id = p.id
        SET p.stock = p.stock - i.quantity
        WHERE i.order_id = ?
    `, orderID); err != nil {
        return fmt.Errorf("error decrementing stock for order %d: %v", orderID, err)
    }

    return tx.Commit()
}

// SetTransactionMeta attaches the transaction reference data to an order.
// Meta rows are write-once: a second submission for the same order cannot
// overwrite what the first one recorded.
func (c *Connection) SetTransactionMeta(ctx context.Context, orderID int, transactionID int64, data map[string]string, detailsURL string) error {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    tx, err := c.db.BeginTx(ctx, nil)
    if err != nil {
        return fmt.Errorf("error starting transaction: %v", err)
    }
    defer tx.Rollback()

    insert := func(key, value string) error {
        _, err := tx.ExecContext(ctx, `
            INSERT INTO order_meta (order_id, meta_key, meta_value)
            VALUES (?, ?, ?)
            ON DUPLICATE KEY UPDATE meta_value = meta_value
        `, orderID, key, value)
        return err
    }

    if err := insert(models.MetaTransactionID, fmt.Sprintf("%d", transactionID)); err != nil {
        return fmt.Errorf("error saving transaction id for order %d: %v", orderID, err)
    }
    if err := insert(models.MetaTransactionDetails, detailsURL); err != nil {
        return fmt.Errorf("error saving transaction link for order %d: %v", orderID, err)
    }
    for key, value := range data {
        if err := insert(models.MetaTransactionData+"."+key, value); err != nil {
            return fmt.Errorf("error saving transaction data for order %d: %v", orderID, err)
        }
    }

    return tx.Commit()
}

// GetTransactionID returns the transaction id recorded for an order, or 0 if
// none was saved yet.
func (c *Connection) GetTransactionID(ctx context.Context, orderID int) (int64, error) {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    var id int64
    err := c.db.QueryRowContext(ctx, `
        SELECT CAST(meta_value AS SIGNED) FROM order_meta
        WHERE order_id = ? AND meta_key = ?
    `, orderID, models.MetaTransactionID).Scan(&id)
    if err == sql.ErrNoRows {
        return 0, nil
    }
    if err != nil {
        return 0, fmt.Errorf("error loading transaction id for order %d: %v", orderID, err)
    }
    return id, nil
}

// GetOrderIDByTransactionID resolves which order a processor notification
// belongs to.
func (c *Connection) GetOrderIDByTransactionID(ctx context.Context, transactionID int64) (int, error) {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    var orderID int
    err := c.db.QueryRowContext(ctx, `
        SELECT order_id FROM order_meta
        WHERE meta_key = ? AND meta_value = ?
    `, models.MetaTransactionID, fmt.Sprintf("%d", transactionID)).Scan(&orderID)
    if err == sql.ErrNoRows {
        return 0, ErrOrderNotFound
    }
    if err != nil {
        return 0, fmt.Errorf("error resolving transaction %d: %v", transactionID, err)
    }
    return orderID, nil
}

// GetTransactionData returns the sanitized transaction detail bundle saved
// for an order, for the confirmation page.
func (c *Connection) GetTransactionData(ctx context.Context, orderID int) (map[string]string, error) {
    ctx, cancel := context.WithTimeout(ctx, queryTimeout)
    defer cancel()

    prefix := models.MetaTransactionData + "."
    rows, err := c.db.QueryContext(ctx, `
        SELECT meta_key, meta_value FROM order_meta
        WHERE order_id = ? AND meta_key LIKE CONCAT(?, '%')
    `, orderID, prefix)
    if err != nil {
        return nil, fmt.Errorf("error loading transaction data for order %d: %v", orderID, err)
    }
    defer rows.Close()

    data := make(map[string]string)
    for rows.Next() {
        var key, value string
        if err := rows.Scan(&key, &value); err != nil {
            return nil, err
        }
        data[key[len(prefix):]] = value
    }
    return data, rows.Err()
}
