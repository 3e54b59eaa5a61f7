package handlers

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
)

func TestHandleStatus(t *testing.T) {
    h := NewAdminHandler(testGateway(), "BRL")

    req := httptest.NewRequest(http.MethodGet, "/api/gateway/status", nil)
    w := httptest.NewRecorder()
    h.HandleStatus(w, req)

    if w.Code != http.StatusOK {
        t.Fatalf("status = %d", w.Code)
    }
    if !strings.Contains(w.Body.String(), `"available":true`) {
        t.Errorf("body = %s", w.Body.String())
    }
}

func TestHandleUpdateSettings(t *testing.T) {
    gateway := testGateway()
    h := NewAdminHandler(gateway, "BRL")

    body := `{"enabled": true, "title": "Pagar.me", "description": "Cartão ou boleto", "api_key": "ak_live_456", "sandbox": false, "debug": true}`
    req := httptest.NewRequest(http.MethodPut, "/api/gateway/settings", strings.NewReader(body))
    w := httptest.NewRecorder()
    h.HandleUpdateSettings(w, req)

    if w.Code != http.StatusOK {
        t.Fatalf("status = %d", w.Code)
    }
    if got := gateway.APIKey(); got != "ak_live_456" {
        t.Errorf("APIKey after update = %q", got)
    }
    if !gateway.Debug() {
        t.Error("Debug flag not applied")
    }
}

func TestHandleUpdateSettingsRejectsEmptyTitle(t *testing.T) {
    gateway := testGateway()
    h := NewAdminHandler(gateway, "BRL")

    req := httptest.NewRequest(http.MethodPut, "/api/gateway/settings", strings.NewReader(`{"title": ""}`))
    w := httptest.NewRecorder()
    h.HandleUpdateSettings(w, req)

    if w.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", w.Code)
    }
    if got := gateway.APIKey(); got != "ak_test_123" {
        t.Errorf("settings changed on rejected update, APIKey = %q", got)
    }
}
