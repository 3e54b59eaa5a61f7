package payment

import (
    "fmt"

    "pagarme-payment-bridge/config"
)

// SupportedCurrency is the only settlement currency the processor accepts.
const SupportedCurrency = "BRL"

// Availability tells whether the gateway can take payments and, when it
// cannot, carries the warnings shown to the store admin. Customers never
// see these; an unavailable gateway simply does not block other payment
// methods.
type Availability struct {
    Available bool     `json:"available"`
    Warnings  []string `json:"warnings,omitempty"`
}

func CheckAvailability(s config.Settings, currency string) Availability {
    var warnings []string

    if s.APIKey == "" {
        warnings = append(warnings, "Pagar.me Disabled: You should inform your API Key.")
    }
    if currency != SupportedCurrency {
        warnings = append(warnings, fmt.Sprintf("Pagar.me Disabled: Currency %q is not supported. Works only with Brazilian Real.", currency))
    }

    return Availability{
        Available: s.Enabled && s.APIKey != "" && currency == SupportedCurrency,
        Warnings:  warnings,
    }
}
