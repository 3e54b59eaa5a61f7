package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"

    "github.com/gorilla/sessions"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/utils"
)

// CartStore is implemented by the Redis cart store.
type CartStore interface {
    Get(ctx context.Context, sessionID string) ([]models.CartItem, error)
    Add(ctx context.Context, sessionID string, item models.CartItem) error
    Clear(ctx context.Context, sessionID string) error
}

type CartHandler struct {
    carts CartStore
    store *sessions.CookieStore
}

func NewCartHandler(carts CartStore, store *sessions.CookieStore) *CartHandler {
    return &CartHandler{
        carts: carts,
        store: store,
    }
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
    sid, err := sessionID(h.store, w, r)
    if err != nil {
        log.Printf("Error resolving cart session: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not open cart session")
        return
    }

    var item models.CartItem
    if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }
    if item.ProductID <= 0 || item.Quantity <= 0 {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid product or quantity")
        return
    }

    if err := h.carts.Add(r.Context(), sid, item); err != nil {
        log.Printf("Error adding to cart %s: %v", sid, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not update cart")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Item added to cart",
    })
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
    sid, err := sessionID(h.store, w, r)
    if err != nil {
        log.Printf("Error resolving cart session: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not open cart session")
        return
    }

    items, err := h.carts.Get(r.Context(), sid)
    if err != nil {
        log.Printf("Error loading cart %s: %v", sid, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not load cart")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Cart contents",
        Data:    items,
    })
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
    sid, err := sessionID(h.store, w, r)
    if err != nil {
        log.Printf("Error resolving cart session: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not open cart session")
        return
    }

    if err := h.carts.Clear(r.Context(), sid); err != nil {
        log.Printf("Error clearing cart %s: %v", sid, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Could not clear cart")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Cart cleared",
    })
}
