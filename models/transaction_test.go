package models

import (
    "encoding/json"
    "testing"
)

func TestTransactionRequestValues(t *testing.T) {
    req := &TransactionRequest{
        APIKey:        "ak_test_123",
        Amount:        "1990",
        PaymentMethod: PaymentMethodBoleto,
        PostbackURL:   "https://store.example/api/pagarme/webhook",
        Customer: Customer{
            Name:  "João da Silva",
            Email: "joao@example.com",
            Phone: PhoneNumber{DDD: "11", Number: "987654321"},
        },
        // Card fields populated but the method is boleto, so they must not
        // be encoded.
        CardNumber: "4242424242424242",
        CardCVV:    "123",
    }

    v := req.Values()

    if got := v.Get("payment_method"); got != "boleto" {
        t.Errorf("payment_method = %q, want boleto", got)
    }
    if got := v.Get("customer[phone][ddd]"); got != "11" {
        t.Errorf("customer[phone][ddd] = %q, want 11", got)
    }
    for _, key := range []string{"card_number", "card_holder_name", "card_expiration_date", "card_cvv"} {
        if _, ok := v[key]; ok {
            t.Errorf("boleto request must not encode %s", key)
        }
    }
    for _, key := range []string{"customer[document_number]", "customer[sex]", "customer[born_at]"} {
        if _, ok := v[key]; ok {
            t.Errorf("empty optional field %s must be omitted", key)
        }
    }

    req.PaymentMethod = PaymentMethodCreditCard
    req.CardHolderName = "Joao da Silva"
    req.CardExpirationDate = "1226"
    v = req.Values()
    for _, key := range []string{"card_number", "card_holder_name", "card_expiration_date", "card_cvv"} {
        if v.Get(key) == "" {
            t.Errorf("credit card request missing %s", key)
        }
    }
}

func TestTransactionResponseErrors(t *testing.T) {
    raw := `{"errors": [{"type": "invalid_parameter", "parameter_name": "card_number", "message": "Número do cartão inválido"}], "url": "/transactions"}`

    var resp TransactionResponse
    if err := json.Unmarshal([]byte(raw), &resp); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }

    if !resp.HasErrors() {
        t.Fatal("expected HasErrors")
    }
    msgs := resp.ErrorMessages()
    if len(msgs) != 1 || msgs[0] != "Número do cartão inválido" {
        t.Errorf("ErrorMessages() = %v", msgs)
    }
}

func TestParseTransactionStatus(t *testing.T) {
    cases := map[string]TransactionStatus{
        "processing":      StatusProcessing,
        "paid":            StatusPaid,
        "waiting_payment": StatusWaitingPayment,
        "refused":         StatusRefused,
        "refunded":        StatusRefunded,
        "chargedback":     StatusUnknown,
        "":                StatusUnknown,
    }

    for in, want := range cases {
        if got := ParseTransactionStatus(in); got != want {
            t.Errorf("ParseTransactionStatus(%q) = %v, want %v", in, got, want)
        }
    }
}
