package email

type Sender interface {
    SendEmail(to, subject, body string) error
}

// Notifier is what the payment flow needs: one email to the store admin per
// refused or refunded transaction.
type Notifier interface {
    NotifyTransactionRefused(orderNumber, transactionURL string) error
    NotifyTransactionRefunded(orderNumber, transactionURL string) error
}
