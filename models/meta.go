package models

// Keys under which transaction reference data is annotated onto an order.
const (
    MetaTransactionID      = "_pagarme_transaction_id"
    MetaTransactionData    = "_pagarme_transaction_data"
    MetaTransactionDetails = "pagarme_transaction_details"
)
