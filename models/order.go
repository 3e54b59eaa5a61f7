package models

import "github.com/shopspring/decimal"

// PersonType mirrors the storefront's billing person type field: individual
// customers carry a CPF, companies a CNPJ.
type PersonType int

const (
    PersonNone       PersonType = 0
    PersonIndividual PersonType = 1
    PersonCompany    PersonType = 2
)

// Order status values owned by the store. The gateway only ever moves orders
// between these in response to transaction statuses.
const (
    OrderStatusPending    = "pending"
    OrderStatusOnHold     = "on-hold"
    OrderStatusProcessing = "processing"
    OrderStatusCompleted  = "completed"
    OrderStatusFailed     = "failed"
    OrderStatusRefunded   = "refunded"
)

type BillingInfo struct {
    FirstName    string     `json:"first_name"`
    LastName     string     `json:"last_name"`
    Company      string     `json:"company,omitempty"`
    Email        string     `json:"email"`
    Phone        string     `json:"phone"`
    Address1     string     `json:"address_1"`
    Number       string     `json:"number"`
    Address2     string     `json:"address_2,omitempty"`
    Neighborhood string     `json:"neighborhood,omitempty"`
    Postcode     string     `json:"postcode"`
    PersonType   PersonType `json:"person_type"`
    CPF          string     `json:"cpf,omitempty"`
    CNPJ         string     `json:"cnpj,omitempty"`
    Sex          string     `json:"sex,omitempty"`
    Birthdate    string     `json:"birthdate,omitempty"`
}

type Order struct {
    ID      int             `json:"id"`
    Number  string          `json:"number"`
    Total   decimal.Decimal `json:"total"`
    Status  string          `json:"status"`
    Billing BillingInfo     `json:"billing"`
}

func (b BillingInfo) FullName() string {
    if b.LastName == "" {
        return b.FirstName
    }
    return b.FirstName + " " + b.LastName
}
