package handlers

import (
    "context"
    "log"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/payment/pagarme"
    "pagarme-payment-bridge/utils"
)

// ReceiptSource is implemented by the order repository.
type ReceiptSource interface {
    GetTransactionID(ctx context.Context, orderID int) (int64, error)
    GetTransactionData(ctx context.Context, orderID int) (map[string]string, error)
}

// OrdersHandler serves the stored transaction details for the order
// confirmation page (boleto link, installments, card brand).
type OrdersHandler struct {
    orders ReceiptSource
}

func NewOrdersHandler(orders ReceiptSource) *OrdersHandler {
    return &OrdersHandler{orders: orders}
}

type receipt struct {
    TransactionID  int64             `json:"transaction_id"`
    TransactionURL string            `json:"transaction_url"`
    Details        map[string]string `json:"details"`
}

func (h *OrdersHandler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
    orderID, err := strconv.Atoi(mux.Vars(r)["id"])
    if err != nil || orderID <= 0 {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid order id")
        return
    }

    transactionID, err := h.orders.GetTransactionID(r.Context(), orderID)
    if err != nil {
        log.Printf("Error loading transaction id for order %d: %v", orderID, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not load order receipt")
        return
    }
    if transactionID == 0 {
        utils.SendErrorResponse(w, http.StatusNotFound, "No transaction recorded for this order")
        return
    }

    details, err := h.orders.GetTransactionData(r.Context(), orderID)
    if err != nil {
        log.Printf("Error loading transaction data for order %d: %v", orderID, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not load order receipt")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Order receipt",
        Data: receipt{
            TransactionID:  transactionID,
            TransactionURL: pagarme.TransactionURL(transactionID),
            Details:        details,
        },
    })
}
