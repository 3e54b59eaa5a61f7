package handlers

import (
    "net/http"

    "github.com/google/uuid"
    "github.com/gorilla/sessions"

    "pagarme-payment-bridge/config"
)

const (
    sessionName  = "cart-session"
    sessionIDKey = "sid"
)

func NewSessionStore(cfg config.SessionConfig) *sessions.CookieStore {
    store := sessions.NewCookieStore([]byte(cfg.Secret))
    store.Options = &sessions.Options{
        Path:     "/",
        Domain:   cfg.Domain,
        MaxAge:   cfg.MaxAge,
        Secure:   true,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
    return store
}

// sessionID returns the cart session id from the cookie, minting one when
// the visitor does not have a session yet.
func sessionID(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request) (string, error) {
    session, err := store.Get(r, sessionName)
    if err != nil {
        // A stale or tampered cookie just gets replaced.
        session, err = store.New(r, sessionName)
        if err != nil {
            return "", err
        }
    }

    sid, ok := session.Values[sessionIDKey].(string)
    if !ok || sid == "" {
        sid = uuid.NewString()
        session.Values[sessionIDKey] = sid
        if err := session.Save(r, w); err != nil {
            return "", err
        }
    }

    return sid, nil
}
