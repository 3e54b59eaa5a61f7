package payment

import (
    "context"
    "fmt"
    "log"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/email"
    "pagarme-payment-bridge/services/payment/pagarme"
    "pagarme-payment-bridge/utils"
)

// Service runs the checkout payment flow: assemble the transaction, submit
// it, record the reference data and drive the order status machine.
type Service struct {
    builder   *Builder
    client    Submitter
    orders    OrderRepository
    notifier  email.Notifier
    cart      CartClearer
    returnURL string
    debug     *utils.DebugLogger
}

func NewService(builder *Builder, client Submitter, orders OrderRepository, notifier email.Notifier, cart CartClearer, returnURL string, debug *utils.DebugLogger) *Service {
    return &Service{
        builder:   builder,
        client:    client,
        orders:    orders,
        notifier:  notifier,
        cart:      cart,
        returnURL: returnURL,
        debug:     debug,
    }
}

// ProcessPayment handles one checkout submission. All failures come back as
// a fail CheckoutResult; the error return only carries context for logging
// and is never surfaced to the customer directly.
func (s *Service) ProcessPayment(ctx context.Context, form *models.CheckoutForm, cartSessionID string) (*models.CheckoutResult, error) {
    order, err := s.orders.GetOrderByID(ctx, form.OrderID)
    if err != nil {
        return &models.CheckoutResult{
            Result:   models.CheckoutResultFail,
            Messages: []string{"Order not found."},
        }, fmt.Errorf("loading order %d: %v", form.OrderID, err)
    }

    s.debug.Printf("doing a transaction for order %s...", order.Number)

    req := s.builder.Build(order, form)

    resp, err := s.client.Submit(ctx, req)
    if err != nil {
        // No transaction occurred: the order is left exactly as it was so
        // the customer can retry.
        return &models.CheckoutResult{
            Result:   models.CheckoutResultFail,
            Messages: []string{"An error occurred while connecting to the payment processor. Please try again."},
        }, fmt.Errorf("submitting transaction for order %s: %v", order.Number, err)
    }

    if resp.HasErrors() {
        s.debug.Printf("failed to make the transaction for order %s: %v", order.Number, resp.Errors)
        return &models.CheckoutResult{
            Result:   models.CheckoutResultFail,
            Messages: resp.ErrorMessages(),
        }, nil
    }

    s.debug.Printf("transaction completed successfully for order %s, transaction id %d, status %s",
        order.Number, resp.ID, resp.Status)

    if err := s.saveTransactionMeta(ctx, order.ID, resp); err != nil {
        log.Printf("Error saving transaction meta for order %s: %v", order.Number, err)
    }

    if _, err := s.ProcessOrderStatus(ctx, order, resp.Status); err != nil {
        log.Printf("Error processing status for order %s: %v", order.Number, err)
    }

    if cartSessionID != "" {
        if err := s.cart.Clear(ctx, cartSessionID); err != nil {
            log.Printf("Error clearing cart %s: %v", cartSessionID, err)
        }
    }

    return &models.CheckoutResult{
        Result:   models.CheckoutResultSuccess,
        Redirect: fmt.Sprintf("%s?order=%s", s.returnURL, order.Number),
    }, nil
}

// saveTransactionMeta attaches the transaction id, the dashboard link and
// the sanitized detail bundle to the order.
func (s *Service) saveTransactionMeta(ctx context.Context, orderID int, resp *models.TransactionResponse) error {
    data := map[string]string{
        "payment_method":  utils.SanitizeTextField(resp.PaymentMethod),
        "installments":    utils.SanitizeTextField(resp.Installments.String()),
        "card_brand":      utils.SanitizeTextField(resp.CardBrand),
        "antifraud_score": utils.SanitizeTextField(resp.AntifraudScore.String()),
        "boleto_url":      utils.SanitizeTextField(resp.BoletoURL),
        "subscription_id": utils.SanitizeTextField(resp.SubscriptionID.String()),
    }

    return s.orders.SetTransactionMeta(ctx, orderID, resp.ID, data, pagarme.TransactionURL(resp.ID))
}

// ProcessOrderStatus applies one transaction status to an order following
// the transition table. Unknown statuses apply no transition and are logged
// so a new processor status shows up in the logs instead of vanishing.
func (s *Service) ProcessOrderStatus(ctx context.Context, order *models.Order, rawStatus string) (*OrderOutcome, error) {
    s.debug.Printf("payment status for order %s is now: %s", order.Number, rawStatus)

    status := models.ParseTransactionStatus(rawStatus)
    outcome := &OrderOutcome{Status: status, RawStatus: rawStatus}

    t, ok := transitions[status]
    if !ok {
        log.Printf("Warning: unknown transaction status %q for order %s, order left untouched", rawStatus, order.Number)
        return outcome, nil
    }

    if t.paymentComplete {
        if err := s.orders.AddOrderNote(ctx, order.ID, t.note); err != nil {
            return outcome, err
        }
        if err := s.orders.PaymentComplete(ctx, order.ID); err != nil {
            return outcome, err
        }
        outcome.OrderStatus = models.OrderStatusProcessing
    } else {
        if err := s.orders.UpdateStatus(ctx, order.ID, t.orderStatus, t.note); err != nil {
            return outcome, err
        }
        outcome.OrderStatus = t.orderStatus
    }

    if t.notify != nil {
        transactionID, err := s.orders.GetTransactionID(ctx, order.ID)
        if err != nil {
            return outcome, err
        }
        if err := t.notify(s.notifier, order.Number, pagarme.TransactionURL(transactionID)); err != nil {
            log.Printf("Error sending admin notification for order %s: %v", order.Number, err)
        } else {
            outcome.Notified = true
        }
    }

    return outcome, nil
}

// ApplyNotification handles a processor postback: resolves the order the
// transaction belongs to and runs it through the status machine.
func (s *Service) ApplyNotification(ctx context.Context, transactionID int64, rawStatus string) (*OrderOutcome, error) {
    orderID, err := s.orders.GetOrderIDByTransactionID(ctx, transactionID)
    if err != nil {
        return nil, fmt.Errorf("resolving transaction %d: %v", transactionID, err)
    }

    order, err := s.orders.GetOrderByID(ctx, orderID)
    if err != nil {
        return nil, fmt.Errorf("loading order %d: %v", orderID, err)
    }

    return s.ProcessOrderStatus(ctx, order, rawStatus)
}
