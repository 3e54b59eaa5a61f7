package payment

import (
    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/email"
)

// OrderOutcome reports what applying a transaction status did to an order.
type OrderOutcome struct {
    Status      models.TransactionStatus
    RawStatus   string
    OrderStatus string // empty when no transition was applied
    Notified    bool
}

type transition struct {
    orderStatus string
    note        string
    // paid is the one status that goes through the payment-complete flow
    // (stock decrement, paid_at) instead of a plain status update.
    paymentComplete bool
    notify          func(email.Notifier, string, string) error
}

// transitions is the closed transaction-status to order-status table. A
// status missing here (only StatusUnknown) leaves the order untouched.
var transitions = map[models.TransactionStatus]transition{
    models.StatusProcessing: {
        orderStatus: models.OrderStatusOnHold,
        note:        "Pagar.me: The transaction is being processed.",
    },
    models.StatusPaid: {
        note:            "Pagar.me: Transaction paid.",
        paymentComplete: true,
    },
    models.StatusWaitingPayment: {
        orderStatus: models.OrderStatusOnHold,
        note:        "Pagar.me: The banking ticket was issued but not paid yet.",
    },
    models.StatusRefused: {
        orderStatus: models.OrderStatusFailed,
        note:        "Pagar.me: The transaction was rejected by the card company or by fraud.",
        notify:      email.Notifier.NotifyTransactionRefused,
    },
    models.StatusRefunded: {
        orderStatus: models.OrderStatusRefunded,
        note:        "Pagar.me: The transaction was refunded/canceled.",
        notify:      email.Notifier.NotifyTransactionRefunded,
    },
}
