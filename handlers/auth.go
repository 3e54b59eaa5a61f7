package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/services/auth"
    "pagarme-payment-bridge/utils"
)

type AuthHandler struct {
    jwtService *auth.JWTService
}

func NewAuthHandler(jwtService *auth.JWTService) *AuthHandler {
    return &AuthHandler{jwtService: jwtService}
}

type loginRequest struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

type loginResponse struct {
    Token string `json:"token"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
    var req loginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    token, err := h.jwtService.Authenticate(req.Username, req.Password)
    if err != nil {
        log.Printf("Failed admin login attempt for %q from %s", req.Username, r.RemoteAddr)
        utils.SendErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Authenticated",
        Data:    loginResponse{Token: token},
    })
}
