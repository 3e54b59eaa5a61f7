package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"

    "github.com/gorilla/sessions"

    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/payment"
    "pagarme-payment-bridge/utils"
)

// CheckoutProcessor is implemented by the payment service.
type CheckoutProcessor interface {
    ProcessPayment(ctx context.Context, form *models.CheckoutForm, cartSessionID string) (*models.CheckoutResult, error)
}

type CheckoutHandler struct {
    payments CheckoutProcessor
    gateway  *config.GatewaySettings
    currency string
    store    *sessions.CookieStore
}

func NewCheckoutHandler(payments CheckoutProcessor, gateway *config.GatewaySettings, currency string, store *sessions.CookieStore) *CheckoutHandler {
    return &CheckoutHandler{
        payments: payments,
        gateway:  gateway,
        currency: currency,
        store:    store,
    }
}

// HandlePayment processes one checkout submission. The response is always a
// structured success/fail result; failures carry the messages to show on
// the checkout form.
func (h *CheckoutHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
    availability := payment.CheckAvailability(h.gateway.Snapshot(), h.currency)
    if !availability.Available {
        utils.SendErrorResponse(w, http.StatusServiceUnavailable, "This payment method is currently unavailable")
        return
    }

    var form models.CheckoutForm
    if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
        log.Printf("Error decoding checkout form: %v", err)
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    if form.OrderID <= 0 {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Missing order id")
        return
    }
    if form.PaymentMethod != models.FormMethodCreditCard && form.PaymentMethod != models.FormMethodBoleto {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Unknown payment method")
        return
    }

    sid, err := sessionID(h.store, w, r)
    if err != nil {
        log.Printf("Error resolving cart session: %v", err)
        // The payment can still go through, the cart just will not be
        // cleared for this visitor.
        sid = ""
    }

    result, err := h.payments.ProcessPayment(r.Context(), &form, sid)
    if err != nil {
        log.Printf("Checkout for order %d: %v", form.OrderID, err)
    }
    if result == nil {
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Payment was not processed")
        return
    }

    status := "error"
    message := "Payment was not processed"
    if result.Result == models.CheckoutResultSuccess {
        status = "success"
        message = "Payment processed"
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  status,
        Message: message,
        Data:    result,
    })
}
