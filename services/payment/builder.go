package payment

import (
    "strings"
    "time"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/utils"
)

// TransformFunc can adjust an assembled transaction before submission.
// Transforms run in registration order, replacing the filter hook third
// party plugins used on the original integration.
type TransformFunc func(*models.TransactionRequest)

// Builder assembles transaction requests from order billing data and the
// posted checkout form. Aside from the configured API key and postback URL
// it is a pure function of its inputs.
type Builder struct {
    apiKey      func() string
    postbackURL string
    transforms  []TransformFunc
    debug       *utils.DebugLogger
}

func NewBuilder(apiKey func() string, postbackURL string, debug *utils.DebugLogger) *Builder {
    return &Builder{
        apiKey:      apiKey,
        postbackURL: postbackURL,
        debug:       debug,
    }
}

func (b *Builder) RegisterTransform(fn TransformFunc) {
    b.transforms = append(b.transforms, fn)
}

// Build generates the transaction data for an order.
func (b *Builder) Build(order *models.Order, form *models.CheckoutForm) *models.TransactionRequest {
    phone := utils.OnlyNumbers(order.Billing.Phone)
    ddd, number := splitPhone(phone)

    req := &models.TransactionRequest{
        APIKey:        b.apiKey(),
        Amount:        utils.FormatAmount(order.Total),
        PaymentMethod: models.PaymentMethodBoleto,
        PostbackURL:   b.postbackURL,
        Customer: models.Customer{
            Name:  order.Billing.FullName(),
            Email: order.Billing.Email,
            Address: models.CustomerAddress{
                Street:        order.Billing.Address1,
                StreetNumber:  order.Billing.Number,
                Complementary: order.Billing.Address2,
                Neighborhood:  order.Billing.Neighborhood,
                Zipcode:       utils.OnlyNumbers(order.Billing.Postcode),
            },
            Phone: models.PhoneNumber{
                DDD:    ddd,
                Number: number,
            },
        },
    }

    // The document number depends on the person type. When the storefront
    // did not collect one, no document is sent at all.
    switch order.Billing.PersonType {
    case models.PersonIndividual:
        req.Customer.DocumentNumber = utils.OnlyNumbers(order.Billing.CPF)
    case models.PersonCompany:
        req.Customer.Name = order.Billing.Company
        req.Customer.DocumentNumber = utils.OnlyNumbers(order.Billing.CNPJ)
    }

    if sex := order.Billing.Sex; sex != "" {
        req.Customer.Sex = strings.ToUpper(string([]rune(sex)[0]))
    }

    if birthdate := order.Billing.Birthdate; birthdate != "" {
        if born, err := time.Parse("02/01/2006", birthdate); err == nil {
            req.Customer.BornAt = born.Format("2006-01-02")
        } else {
            b.debug.Printf("dropping malformed birthdate %q: %v", birthdate, err)
        }
    }

    if form.IsCreditCard() {
        req.PaymentMethod = models.PaymentMethodCreditCard
        req.CardNumber = utils.OnlyNumbers(form.CardNumber)
        req.CardHolderName = form.CardHolderName
        req.CardExpirationDate = utils.OnlyNumbers(form.CardExpiry)
        req.CardCVV = form.CardCVC
    }

    for _, transform := range b.transforms {
        transform(req)
    }

    return req
}

// splitPhone breaks a digits-only Brazilian phone into the two digit area
// code and the subscriber number.
func splitPhone(phone string) (ddd, number string) {
    if len(phone) <= 2 {
        return phone, ""
    }
    return phone[:2], phone[2:]
}
