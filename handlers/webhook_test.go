package handlers

import (
    "context"
    "crypto/hmac"
    "crypto/sha1"
    "encoding/hex"
    "errors"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/payment"
)

type fakeApplier struct {
    transactionID int64
    rawStatus     string
    outcome       *payment.OrderOutcome
    err           error
}

func (f *fakeApplier) ApplyNotification(_ context.Context, transactionID int64, rawStatus string) (*payment.OrderOutcome, error) {
    f.transactionID = transactionID
    f.rawStatus = rawStatus
    if f.outcome == nil && f.err == nil {
        f.outcome = &payment.OrderOutcome{RawStatus: rawStatus, OrderStatus: models.OrderStatusOnHold}
    }
    return f.outcome, f.err
}

func testGateway() *config.GatewaySettings {
    return config.NewGatewaySettings(config.Settings{
        Enabled: true,
        Title:   "Pagar.me",
        APIKey:  "ak_test_123",
    })
}

func sign(body, key string) string {
    mac := hmac.New(sha1.New, []byte(key))
    mac.Write([]byte(body))
    return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

func postback(t *testing.T, h *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(http.MethodPost, "/api/pagarme/webhook", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    if signature != "" {
        req.Header.Set("X-Hub-Signature", signature)
    }
    w := httptest.NewRecorder()
    h.HandlePostback(w, req)
    return w
}

func TestHandlePostback(t *testing.T) {
    applier := &fakeApplier{}
    h := NewWebhookHandler(applier, testGateway())

    body := url.Values{
        "id":             {"184220"},
        "current_status": {"paid"},
        "old_status":     {"processing"},
        "object":         {"transaction"},
    }.Encode()

    w := postback(t, h, body, sign(body, "ak_test_123"))

    if w.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", w.Code)
    }
    if applier.transactionID != 184220 || applier.rawStatus != "paid" {
        t.Errorf("applied %d/%q", applier.transactionID, applier.rawStatus)
    }
}

func TestHandlePostbackRejectsBadSignature(t *testing.T) {
    applier := &fakeApplier{}
    h := NewWebhookHandler(applier, testGateway())

    body := url.Values{"id": {"184220"}, "current_status": {"paid"}}.Encode()

    cases := map[string]string{
        "missing":   "",
        "wrong key": sign(body, "ak_other"),
        "bad format": "md5=abcdef",
        "tampered":  sign(body+"&current_status=refunded", "ak_test_123"),
    }
    for name, signature := range cases {
        t.Run(name, func(t *testing.T) {
            w := postback(t, h, body, signature)
            if w.Code != http.StatusUnauthorized {
                t.Errorf("status = %d, want 401", w.Code)
            }
        })
    }

    if applier.transactionID != 0 {
        t.Error("rejected postback must not reach the status machine")
    }
}

func TestHandlePostbackRejectsBadTransactionID(t *testing.T) {
    h := NewWebhookHandler(&fakeApplier{}, testGateway())

    for _, id := range []string{"", "abc", "-5"} {
        body := url.Values{"id": {id}, "current_status": {"paid"}}.Encode()
        w := postback(t, h, body, sign(body, "ak_test_123"))
        if w.Code != http.StatusBadRequest {
            t.Errorf("id %q: status = %d, want 400", id, w.Code)
        }
    }
}

func TestHandlePostbackUnknownOrder(t *testing.T) {
    applier := &fakeApplier{err: errors.New("resolving transaction 184220: order not found")}
    h := NewWebhookHandler(applier, testGateway())

    body := url.Values{"id": {"184220"}, "current_status": {"paid"}}.Encode()
    w := postback(t, h, body, sign(body, "ak_test_123"))

    if w.Code != http.StatusUnprocessableEntity {
        t.Errorf("status = %d, want 422", w.Code)
    }
}
