package models

// Form values posted by the checkout payment form.
const (
    FormMethodCreditCard = "credit-card"
    FormMethodBoleto     = "boleto"
)

type CheckoutForm struct {
    OrderID        int    `json:"order_id"`
    PaymentMethod  string `json:"payment_method"`
    CardNumber     string `json:"card_number,omitempty"`
    CardHolderName string `json:"card_holder_name,omitempty"`
    CardExpiry     string `json:"card_expiry,omitempty"`
    CardCVC        string `json:"card_cvc,omitempty"`
}

func (f *CheckoutForm) IsCreditCard() bool {
    return f.PaymentMethod == FormMethodCreditCard
}
