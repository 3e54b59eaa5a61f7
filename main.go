package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "runtime"
    "syscall"
    "time"

    _ "github.com/go-sql-driver/mysql"
    "github.com/gorilla/mux"

    "pagarme-payment-bridge/cart"
    "pagarme-payment-bridge/config"
    "pagarme-payment-bridge/database"
    "pagarme-payment-bridge/handlers"
    "pagarme-payment-bridge/middleware"
    "pagarme-payment-bridge/services/auth"
    "pagarme-payment-bridge/services/email"
    "pagarme-payment-bridge/services/payment"
    "pagarme-payment-bridge/services/payment/pagarme"
    "pagarme-payment-bridge/utils"
)

func corsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
        w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")

        if r.Method == "OPTIONS" {
            w.WriteHeader(http.StatusOK)
            return
        }
        next.ServeHTTP(w, r)
    })
}

type responseWriter struct {
    http.ResponseWriter
    status int
}

func (rw *responseWriter) WriteHeader(code int) {
    rw.status = code
    rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()

        wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
        next.ServeHTTP(wrapper, r)

        elapsed := time.Since(start)
        if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
            log.Printf(
                "%s %s %s %d %v",
                r.Method,
                r.RequestURI,
                r.RemoteAddr,
                wrapper.status,
                elapsed,
            )
        }
    })
}

func main() {
    log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

    numCPU := runtime.NumCPU()
    runtime.GOMAXPROCS(numCPU)
    log.Printf("Server starting with %d CPUs available", numCPU)

    cfg := config.Load()
    log.Printf("Configuration loaded successfully")

    var db *database.Connection
    var err error
    for retries := 0; retries < 5; retries++ {
        db, err = database.NewConnection(cfg.Database)
        if err == nil {
            break
        }
        retryDelay := time.Duration(retries+1) * time.Second
        log.Printf("Failed to connect to database (attempt %d/5): %v. Retrying in %v...",
            retries+1, err, retryDelay)
        time.Sleep(retryDelay)
    }
    if err != nil {
        log.Fatalf("Failed to connect to database after retries: %v", err)
    }
    defer db.Close()
    log.Println("Successfully connected to database")

    cartStore, err := cart.NewStore(cfg.Redis.URL)
    if err != nil {
        log.Fatalf("Failed to connect to Redis: %v", err)
    }
    defer cartStore.Close()
    log.Println("Successfully connected to Redis")

    debugLog := utils.NewDebugLogger(cfg.Gateway.Debug(), "pagarme")

    client := pagarme.NewClient(cfg.Gateway.Sandbox, debugLog)
    builder := payment.NewBuilder(cfg.Gateway.APIKey, cfg.Store.PostbackURL, debugLog)

    smtpService := email.NewSMTPService(cfg.SMTP)
    notifier := email.NewAdminNotifier(smtpService, cfg.Store.AdminEmail)

    paymentService := payment.NewService(builder, client, db, notifier, cartStore, cfg.Store.ReturnURL, debugLog)

    jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, "pagarme-payment-bridge", cfg.Auth.AdminUser, cfg.Auth.AdminPassword)
    sessionStore := handlers.NewSessionStore(cfg.Session)

    checkoutHandler := handlers.NewCheckoutHandler(paymentService, cfg.Gateway, cfg.Store.Currency, sessionStore)
    webhookHandler := handlers.NewWebhookHandler(paymentService, cfg.Gateway)
    cartHandler := handlers.NewCartHandler(cartStore, sessionStore)
    ordersHandler := handlers.NewOrdersHandler(db)
    adminHandler := handlers.NewAdminHandler(cfg.Gateway, cfg.Store.Currency)
    authHandler := handlers.NewAuthHandler(jwtService)

    r := mux.NewRouter()
    r.Use(corsMiddleware)
    r.Use(loggingMiddleware)

    api := r.PathPrefix("/api").Subrouter()
    api.HandleFunc("/auth/login", authHandler.HandleLogin).Methods("POST", "OPTIONS")
    api.HandleFunc("/checkout/payment", checkoutHandler.HandlePayment).Methods("POST", "OPTIONS")
    api.HandleFunc("/pagarme/webhook", webhookHandler.HandlePostback).Methods("POST")
    api.HandleFunc("/orders/{id:[0-9]+}/receipt", ordersHandler.HandleReceipt).Methods("GET", "OPTIONS")
    api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET", "OPTIONS")
    api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")
    api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST", "OPTIONS")

    admin := api.PathPrefix("/gateway").Subrouter()
    admin.Use(middleware.AuthMiddleware(jwtService))
    admin.HandleFunc("/status", adminHandler.HandleStatus).Methods("GET", "OPTIONS")
    admin.HandleFunc("/settings", adminHandler.HandleUpdateSettings).Methods("PUT")

    srv := &http.Server{
        Addr:         ":" + cfg.Server.Port,
        Handler:      r,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: 90 * time.Second,
        IdleTimeout:  120 * time.Second,
    }

    go func() {
        log.Printf("Server listening on port %s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Server failed: %v", err)
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
    <-stop

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Server shutdown error: %v", err)
    }
    log.Println("Server stopped")
}
