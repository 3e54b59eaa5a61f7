package models

type APIResponse struct {
    Status  string      `json:"status"`
    Message string      `json:"message"`
    Data    interface{} `json:"data,omitempty"`
}

// CheckoutResult is what the checkout endpoint hands back to the storefront:
// either a redirect to the order confirmation page or the list of messages
// to show on the checkout form.
type CheckoutResult struct {
    Result   string   `json:"result"`
    Redirect string   `json:"redirect,omitempty"`
    Messages []string `json:"messages,omitempty"`
}

const (
    CheckoutResultSuccess = "success"
    CheckoutResultFail    = "fail"
)
