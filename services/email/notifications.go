package email

import "fmt"

// AdminNotifier sends transaction notifications to the store admin address.
type AdminNotifier struct {
    sender     Sender
    adminEmail string
}

func NewAdminNotifier(sender Sender, adminEmail string) *AdminNotifier {
    return &AdminNotifier{
        sender:     sender,
        adminEmail: adminEmail,
    }
}

// wrapMessage puts the title and message into the plain HTML shell the store
// uses for admin mail.
func wrapMessage(title, message string) string {
    return fmt.Sprintf(`
        <h2>%s</h2>
        <p>%s</p>
    `, title, message)
}

func (n *AdminNotifier) NotifyTransactionRefused(orderNumber, transactionURL string) error {
    link := fmt.Sprintf(`<a href="%s">%s</a>`, transactionURL, transactionURL)
    return n.sender.SendEmail(
        n.adminEmail,
        fmt.Sprintf("The transaction for order %s was rejected by the card company or by fraud", orderNumber),
        wrapMessage(
            "Transaction failed",
            fmt.Sprintf("Order %s has been marked as failed, because the transaction was rejected by the card company or by fraud, for more details, see %s.", orderNumber, link),
        ),
    )
}

func (n *AdminNotifier) NotifyTransactionRefunded(orderNumber, transactionURL string) error {
    link := fmt.Sprintf(`<a href="%s">%s</a>`, transactionURL, transactionURL)
    return n.sender.SendEmail(
        n.adminEmail,
        fmt.Sprintf("The transaction for order %s refunded", orderNumber),
        wrapMessage(
            "Transaction refunded",
            fmt.Sprintf("Order %s has been marked as refunded by Pagar.me, for more details, see %s.", orderNumber, link),
        ),
    )
}
