package payment

import (
    "context"

    "pagarme-payment-bridge/models"
)

// OrderRepository is the slice of the store the payment flow needs: loading
// orders, moving them through their lifecycle and annotating them with
// transaction references.
type OrderRepository interface {
    GetOrderByID(ctx context.Context, orderID int) (*models.Order, error)
    UpdateStatus(ctx context.Context, orderID int, status, note string) error
    AddOrderNote(ctx context.Context, orderID int, note string) error
    PaymentComplete(ctx context.Context, orderID int) error
    SetTransactionMeta(ctx context.Context, orderID int, transactionID int64, data map[string]string, detailsURL string) error
    GetTransactionID(ctx context.Context, orderID int) (int64, error)
    GetOrderIDByTransactionID(ctx context.Context, transactionID int64) (int, error)
}

// Submitter posts an assembled transaction to the processor.
type Submitter interface {
    Submit(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResponse, error)
}

// CartClearer empties the customer's cart after a successful checkout.
type CartClearer interface {
    Clear(ctx context.Context, sessionID string) error
}
