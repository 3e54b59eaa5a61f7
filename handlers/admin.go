package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/payment"
    "pagarme-payment-bridge/utils"
)

// AdminHandler exposes the gateway configuration surface: availability with
// its warnings, and settings updates.
type AdminHandler struct {
    gateway  *config.GatewaySettings
    currency string
}

func NewAdminHandler(gateway *config.GatewaySettings, currency string) *AdminHandler {
    return &AdminHandler{
        gateway:  gateway,
        currency: currency,
    }
}

type gatewayStatus struct {
    Availability payment.Availability `json:"availability"`
    Settings     config.Settings      `json:"settings"`
}

func (h *AdminHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
    settings := h.gateway.Snapshot()

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Gateway status",
        Data: gatewayStatus{
            Availability: payment.CheckAvailability(settings, h.currency),
            Settings:     settings,
        },
    })
}

func (h *AdminHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
    var settings config.Settings
    if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
        log.Printf("Error decoding settings: %v", err)
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    if settings.Title == "" {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Title must not be empty")
        return
    }

    h.gateway.Update(settings)
    log.Printf("Gateway settings updated (sandbox=%v, debug=%v)", settings.Sandbox, settings.Debug)

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Settings updated",
        Data: gatewayStatus{
            Availability: payment.CheckAvailability(settings, h.currency),
            Settings:     settings,
        },
    })
}
