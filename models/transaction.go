package models

import (
    "encoding/json"
    "net/url"
)

// Payment methods on the processor's wire format.
const (
    PaymentMethodCreditCard = "credit_card"
    PaymentMethodBoleto     = "boleto"
)

type PhoneNumber struct {
    DDD    string
    Number string
}

type CustomerAddress struct {
    Street        string
    StreetNumber  string
    Complementary string
    Neighborhood  string
    Zipcode       string
}

type Customer struct {
    Name           string
    Email          string
    Address        CustomerAddress
    Phone          PhoneNumber
    DocumentNumber string
    Sex            string
    BornAt         string
}

// TransactionRequest is the assembled payload for POST /transactions. Card
// fields are only set when PaymentMethod is credit_card.
type TransactionRequest struct {
    APIKey             string
    Amount             string
    PaymentMethod      string
    PostbackURL        string
    Customer           Customer
    CardNumber         string
    CardHolderName     string
    CardExpirationDate string
    CardCVV            string
}

// Values renders the request as the nested bracket form encoding the
// processor expects (customer[address][street], customer[phone][ddd], ...).
// Optional customer fields are omitted entirely when empty.
func (r *TransactionRequest) Values() url.Values {
    v := url.Values{}
    v.Set("api_key", r.APIKey)
    v.Set("amount", r.Amount)
    v.Set("payment_method", r.PaymentMethod)
    v.Set("postback_url", r.PostbackURL)

    v.Set("customer[name]", r.Customer.Name)
    v.Set("customer[email]", r.Customer.Email)
    v.Set("customer[address][street]", r.Customer.Address.Street)
    v.Set("customer[address][street_number]", r.Customer.Address.StreetNumber)
    v.Set("customer[address][complementary]", r.Customer.Address.Complementary)
    v.Set("customer[address][neighborhood]", r.Customer.Address.Neighborhood)
    v.Set("customer[address][zipcode]", r.Customer.Address.Zipcode)
    v.Set("customer[phone][ddd]", r.Customer.Phone.DDD)
    v.Set("customer[phone][number]", r.Customer.Phone.Number)

    if r.Customer.DocumentNumber != "" {
        v.Set("customer[document_number]", r.Customer.DocumentNumber)
    }
    if r.Customer.Sex != "" {
        v.Set("customer[sex]", r.Customer.Sex)
    }
    if r.Customer.BornAt != "" {
        v.Set("customer[born_at]", r.Customer.BornAt)
    }

    if r.PaymentMethod == PaymentMethodCreditCard {
        v.Set("card_number", r.CardNumber)
        v.Set("card_holder_name", r.CardHolderName)
        v.Set("card_expiration_date", r.CardExpirationDate)
        v.Set("card_cvv", r.CardCVV)
    }

    return v
}

// ProcessorError is one entry of the errors array the processor returns when
// it rejects a request. Message is shown verbatim to the customer.
type ProcessorError struct {
    Type          string `json:"type"`
    ParameterName string `json:"parameter_name"`
    Message       string `json:"message"`
}

// TransactionResponse is the processor's answer: either Errors is non-empty
// and every other field is meaningless, or it describes a created
// transaction.
type TransactionResponse struct {
    ID             int64            `json:"id"`
    Status         string           `json:"status"`
    PaymentMethod  string           `json:"payment_method"`
    Installments   json.Number      `json:"installments"`
    CardBrand      string           `json:"card_brand"`
    AntifraudScore json.Number      `json:"antifraud_score"`
    BoletoURL      string           `json:"boleto_url"`
    SubscriptionID json.Number      `json:"subscription_id"`
    Errors         []ProcessorError `json:"errors,omitempty"`
}

func (r *TransactionResponse) HasErrors() bool {
    return len(r.Errors) > 0
}

func (r *TransactionResponse) ErrorMessages() []string {
    if len(r.Errors) == 0 {
        return nil
    }
    msgs := make([]string, 0, len(r.Errors))
    for _, e := range r.Errors {
        msgs = append(msgs, e.Message)
    }
    return msgs
}
