package config

import "sync"

// Settings is the admin-editable gateway configuration.
type Settings struct {
    Enabled     bool   `json:"enabled"`
    Title       string `json:"title"`
    Description string `json:"description"`
    APIKey      string `json:"api_key"`
    Sandbox     bool   `json:"sandbox"`
    Debug       bool   `json:"debug"`
}

// GatewaySettings holds the live settings behind a mutex so the admin
// settings endpoint can update them while checkouts are being served.
type GatewaySettings struct {
    mu sync.RWMutex
    s  Settings
}

func NewGatewaySettings(s Settings) *GatewaySettings {
    return &GatewaySettings{s: s}
}

func (g *GatewaySettings) Snapshot() Settings {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return g.s
}

func (g *GatewaySettings) Update(s Settings) {
    g.mu.Lock()
    defer g.mu.Unlock()
    g.s = s
}

func (g *GatewaySettings) Enabled() bool {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return g.s.Enabled
}

func (g *GatewaySettings) APIKey() string {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return g.s.APIKey
}

func (g *GatewaySettings) Sandbox() bool {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return g.s.Sandbox
}

func (g *GatewaySettings) Debug() bool {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return g.s.Debug
}
