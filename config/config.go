package config

import (
    "log"
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

type Config struct {
    Database DatabaseConfig
    Gateway  *GatewaySettings
    Store    StoreConfig
    SMTP     SMTPConfig
    Server   ServerConfig
    Redis    RedisConfig
    Session  SessionConfig
    Auth     AuthConfig
}

type DatabaseConfig struct {
    Host     string
    User     string
    Password string
    DBName   string
}

type StoreConfig struct {
    Currency    string
    AdminEmail  string
    ReturnURL   string // order confirmation page, the order number is appended
    PostbackURL string // public URL the processor calls back on
}

type SMTPConfig struct {
    Host     string
    Port     string
    Username string
    Password string
    From     string
}

type ServerConfig struct {
    Port string
}

type RedisConfig struct {
    URL string
}

type SessionConfig struct {
    Secret string
    Domain string
    MaxAge int
}

type AuthConfig struct {
    JWTSecret     string
    AdminUser     string
    AdminPassword string
}

func Load() *Config {
    if err := godotenv.Load(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    cfg := &Config{
        Database: DatabaseConfig{
            Host:     os.Getenv("DB_HOST"),
            User:     os.Getenv("DB_USER"),
            Password: os.Getenv("DB_PASSWORD"),
            DBName:   os.Getenv("DB_NAME"),
        },
        Gateway: NewGatewaySettings(Settings{
            Enabled:     envBool("PAGARME_ENABLED", true),
            Title:       envDefault("PAGARME_TITLE", "Pagar.me"),
            Description: envDefault("PAGARME_DESCRIPTION", "Pay with Credit Card or Banking Ticket via Pagar.me"),
            APIKey:      os.Getenv("PAGARME_API_KEY"),
            Sandbox:     envBool("PAGARME_SANDBOX", false),
            Debug:       envBool("PAGARME_DEBUG", false),
        }),
        Store: StoreConfig{
            Currency:    envDefault("STORE_CURRENCY", "BRL"),
            AdminEmail:  os.Getenv("STORE_ADMIN_EMAIL"),
            ReturnURL:   os.Getenv("STORE_RETURN_URL"),
            PostbackURL: os.Getenv("STORE_POSTBACK_URL"),
        },
        SMTP: SMTPConfig{
            Host:     os.Getenv("SMTP_HOST"),
            Port:     os.Getenv("SMTP_PORT"),
            Username: os.Getenv("SMTP_USER"),
            Password: os.Getenv("SMTP_PASSWORD"),
            From:     envDefault("SMTP_FROM", "no-reply@localhost"),
        },
        Server: ServerConfig{
            Port: envDefault("SERVER_PORT", "8080"),
        },
        Redis: RedisConfig{
            URL: os.Getenv("REDIS_URL"),
        },
        Session: SessionConfig{
            Secret: os.Getenv("SESSION_SECRET"),
            Domain: os.Getenv("SESSION_DOMAIN"),
            MaxAge: envInt("SESSION_MAX_AGE", 86400*7),
        },
        Auth: AuthConfig{
            JWTSecret:     os.Getenv("JWT_SECRET"),
            AdminUser:     os.Getenv("ADMIN_USER"),
            AdminPassword: os.Getenv("ADMIN_PASSWORD"),
        },
    }

    if cfg.Redis.URL == "" {
        cfg.Redis.URL = "redis://localhost:6379/0"
        log.Printf("Warning: REDIS_URL not set, using default: %s", cfg.Redis.URL)
    }

    if cfg.Gateway.APIKey() == "" {
        log.Printf("Warning: PAGARME_API_KEY not set, gateway will report itself unavailable")
    }

    return cfg
}

func envDefault(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}

func envBool(key string, fallback bool) bool {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    b, err := strconv.ParseBool(v)
    if err != nil {
        log.Printf("Warning: invalid value for %s: %q, using %v", key, v, fallback)
        return fallback
    }
    return b
}

func envInt(key string, fallback int) int {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Printf("Warning: invalid value for %s: %q, using %d", key, v, fallback)
        return fallback
    }
    return n
}
