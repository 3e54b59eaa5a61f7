package payment

import (
    "strings"
    "testing"

    "pagarme-payment-bridge/config"
)

func TestCheckAvailability(t *testing.T) {
    base := config.Settings{Enabled: true, Title: "Pagar.me", APIKey: "ak_live_123"}

    cases := []struct {
        name          string
        settings      config.Settings
        currency      string
        wantAvailable bool
        wantWarnings  int
    }{
        {"configured", base, "BRL", true, 0},
        {"disabled", config.Settings{Enabled: false, APIKey: "ak_live_123"}, "BRL", false, 0},
        {"missing api key", config.Settings{Enabled: true}, "BRL", false, 1},
        {"wrong currency", base, "USD", false, 1},
        {"missing key and wrong currency", config.Settings{Enabled: true}, "USD", false, 2},
    }

    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            got := CheckAvailability(c.settings, c.currency)
            if got.Available != c.wantAvailable {
                t.Errorf("Available = %v, want %v", got.Available, c.wantAvailable)
            }
            if len(got.Warnings) != c.wantWarnings {
                t.Errorf("Warnings = %v, want %d", got.Warnings, c.wantWarnings)
            }
        })
    }
}

func TestCurrencyWarningNamesTheCurrency(t *testing.T) {
    got := CheckAvailability(config.Settings{Enabled: true, APIKey: "ak"}, "USD")
    if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], `"USD"`) {
        t.Errorf("Warnings = %v, want the rejected currency named", got.Warnings)
    }
}
