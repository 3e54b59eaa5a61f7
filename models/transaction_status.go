package models

// TransactionStatus is the closed set of statuses the processor reports for
// a transaction. Anything outside the known set parses to StatusUnknown so
// an unhandled value is visible to callers instead of disappearing in a
// string comparison.
type TransactionStatus int

const (
    StatusUnknown TransactionStatus = iota
    StatusProcessing
    StatusPaid
    StatusWaitingPayment
    StatusRefused
    StatusRefunded
)

func ParseTransactionStatus(s string) TransactionStatus {
    switch s {
    case "processing":
        return StatusProcessing
    case "paid":
        return StatusPaid
    case "waiting_payment":
        return StatusWaitingPayment
    case "refused":
        return StatusRefused
    case "refunded":
        return StatusRefunded
    default:
        return StatusUnknown
    }
}

func (s TransactionStatus) String() string {
    switch s {
    case StatusProcessing:
        return "processing"
    case StatusPaid:
        return "paid"
    case StatusWaitingPayment:
        return "waiting_payment"
    case StatusRefused:
        return "refused"
    case StatusRefunded:
        return "refunded"
    default:
        return "unknown"
    }
}

func (s TransactionStatus) IsKnown() bool {
    return s != StatusUnknown
}
