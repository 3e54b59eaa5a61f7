package handlers

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/models"
)

type fakeProcessor struct {
    form   *models.CheckoutForm
    sid    string
    result *models.CheckoutResult
    err    error
}

func (f *fakeProcessor) ProcessPayment(_ context.Context, form *models.CheckoutForm, cartSessionID string) (*models.CheckoutResult, error) {
    f.form = form
    f.sid = cartSessionID
    return f.result, f.err
}

func newCheckoutHandler(processor *fakeProcessor, gateway *config.GatewaySettings) *CheckoutHandler {
    return NewCheckoutHandler(processor, gateway, "BRL", NewSessionStore(config.SessionConfig{Secret: "test-secret", MaxAge: 3600}))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
    t.Helper()
    var resp models.APIResponse
    if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
        t.Fatalf("decoding response: %v", err)
    }
    return resp
}

func TestHandlePaymentSuccess(t *testing.T) {
    processor := &fakeProcessor{result: &models.CheckoutResult{
        Result:   models.CheckoutResultSuccess,
        Redirect: "https://store.example/order-received?order=42",
    }}
    h := newCheckoutHandler(processor, testGateway())

    body := `{"order_id": 42, "payment_method": "boleto"}`
    req := httptest.NewRequest(http.MethodPost, "/api/checkout/payment", strings.NewReader(body))
    w := httptest.NewRecorder()
    h.HandlePayment(w, req)

    if w.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", w.Code)
    }

    resp := decodeEnvelope(t, w)
    if resp.Status != "success" {
        t.Errorf("envelope status = %q", resp.Status)
    }
    if processor.form == nil || processor.form.OrderID != 42 {
        t.Errorf("processor got form %+v", processor.form)
    }
    if processor.sid == "" {
        t.Error("expected a minted cart session id")
    }
}

func TestHandlePaymentFail(t *testing.T) {
    processor := &fakeProcessor{result: &models.CheckoutResult{
        Result:   models.CheckoutResultFail,
        Messages: []string{"Número do cartão inválido"},
    }}
    h := newCheckoutHandler(processor, testGateway())

    body := `{"order_id": 42, "payment_method": "credit-card"}`
    req := httptest.NewRequest(http.MethodPost, "/api/checkout/payment", strings.NewReader(body))
    w := httptest.NewRecorder()
    h.HandlePayment(w, req)

    if w.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200 with a fail result", w.Code)
    }

    resp := decodeEnvelope(t, w)
    if resp.Status != "error" {
        t.Errorf("envelope status = %q, want error", resp.Status)
    }
}

func TestHandlePaymentUnavailableGateway(t *testing.T) {
    h := newCheckoutHandler(&fakeProcessor{}, config.NewGatewaySettings(config.Settings{
        Enabled: true, // but no API key
        Title:   "Pagar.me",
    }))

    req := httptest.NewRequest(http.MethodPost, "/api/checkout/payment", strings.NewReader(`{"order_id": 42, "payment_method": "boleto"}`))
    w := httptest.NewRecorder()
    h.HandlePayment(w, req)

    if w.Code != http.StatusServiceUnavailable {
        t.Errorf("status = %d, want 503", w.Code)
    }
}

func TestHandlePaymentValidation(t *testing.T) {
    cases := []struct {
        name string
        body string
    }{
        {"bad json", `{`},
        {"missing order", `{"payment_method": "boleto"}`},
        {"unknown method", `{"order_id": 42, "payment_method": "pix"}`},
    }

    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            h := newCheckoutHandler(&fakeProcessor{}, testGateway())
            req := httptest.NewRequest(http.MethodPost, "/api/checkout/payment", strings.NewReader(c.body))
            w := httptest.NewRecorder()
            h.HandlePayment(w, req)

            if w.Code != http.StatusBadRequest {
                t.Errorf("status = %d, want 400", w.Code)
            }
        })
    }
}
