package handlers

import (
    "context"
    "crypto/hmac"
    "crypto/sha1"
    "encoding/hex"
    "io"
    "log"
    "net/http"
    "net/url"
    "strconv"
    "strings"

    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/services/payment"
)

// NotificationApplier is implemented by the payment service.
type NotificationApplier interface {
    ApplyNotification(ctx context.Context, transactionID int64, rawStatus string) (*payment.OrderOutcome, error)
}

// WebhookHandler receives the processor's postbacks on the URL handed over
// in every transaction request.
type WebhookHandler struct {
    payments NotificationApplier
    gateway  *config.GatewaySettings
}

func NewWebhookHandler(payments NotificationApplier, gateway *config.GatewaySettings) *WebhookHandler {
    return &WebhookHandler{
        payments: payments,
        gateway:  gateway,
    }
}

// HandlePostback applies a transaction status notification to its order.
// The body is form-encoded with at least `id` and `current_status`, signed
// with an HMAC-SHA1 of the raw body under the API key (X-Hub-Signature).
func (h *WebhookHandler) HandlePostback(w http.ResponseWriter, r *http.Request) {
    body, err := io.ReadAll(r.Body)
    if err != nil {
        log.Printf("Error reading postback body: %v", err)
        w.WriteHeader(http.StatusBadRequest)
        return
    }

    if !h.validSignature(r.Header.Get("X-Hub-Signature"), body) {
        log.Printf("Rejected postback with invalid signature from %s", r.RemoteAddr)
        w.WriteHeader(http.StatusUnauthorized)
        return
    }

    form, err := url.ParseQuery(string(body))
    if err != nil {
        log.Printf("Error parsing postback form: %v", err)
        w.WriteHeader(http.StatusBadRequest)
        return
    }

    transactionID, err := strconv.ParseInt(form.Get("id"), 10, 64)
    if err != nil || transactionID <= 0 {
        log.Printf("Postback with invalid transaction id %q", form.Get("id"))
        w.WriteHeader(http.StatusBadRequest)
        return
    }
    currentStatus := form.Get("current_status")

    log.Printf("Received postback for transaction %d: status=%s", transactionID, currentStatus)

    outcome, err := h.payments.ApplyNotification(r.Context(), transactionID, currentStatus)
    if err != nil {
        log.Printf("Error applying notification for transaction %d: %v", transactionID, err)
        w.WriteHeader(http.StatusUnprocessableEntity)
        return
    }

    if outcome.OrderStatus == "" {
        log.Printf("Postback for transaction %d applied no transition (status %q)", transactionID, outcome.RawStatus)
    }

    w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) validSignature(header string, body []byte) bool {
    // Format: "sha1=<hex digest>".
    parts := strings.SplitN(header, "=", 2)
    if len(parts) != 2 || parts[0] != "sha1" {
        return false
    }

    mac := hmac.New(sha1.New, []byte(h.gateway.APIKey()))
    mac.Write(body)
    expected := hex.EncodeToString(mac.Sum(nil))

    return hmac.Equal([]byte(expected), []byte(parts[1]))
}
