package pagarme

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "pagarme-payment-bridge/models"
    "pagarme-payment-bridge/utils"
)

const (
    ProductionEndpoint = "https://api.pagar.me/1"
    SandboxEndpoint    = "https://api.sandbox.pagar.me/1"
    DashboardURL       = "https://dashboard.pagar.me"

    // The processor is slow on boleto issuance, the original integration
    // used the same 60 second ceiling.
    RequestTimeout = 60 * time.Second
)

// TransportError reports that no transaction happened at all: the request
// never reached the processor or its answer could not be read. It is a
// different failure from a processor-reported error, which means a
// transaction was attempted and rejected.
type TransportError struct {
    Op  string
    Err error
}

func (e *TransportError) Error() string {
    return fmt.Sprintf("pagarme: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
    return e.Err
}

type Client struct {
    sandbox func() bool
    client  *http.Client
    debug   *utils.DebugLogger

    // baseURL overrides the endpoint selection in tests.
    baseURL string
}

// NewClient builds the processor client. sandbox is read on every call so
// admin settings updates take effect without a restart. TLS certificates
// are verified with the default transport.
func NewClient(sandbox func() bool, debug *utils.DebugLogger) *Client {
    transport := &http.Transport{
        MaxIdleConns:        100,
        MaxIdleConnsPerHost: 20,
        MaxConnsPerHost:     100,
        IdleConnTimeout:     90 * time.Second,
        TLSHandshakeTimeout: 10 * time.Second,
    }

    return &Client{
        sandbox: sandbox,
        debug:   debug,
        client: &http.Client{
            Timeout:   RequestTimeout,
            Transport: transport,
        },
    }
}

func (c *Client) getEndpoint() string {
    if c.baseURL != "" {
        return c.baseURL
    }
    if c.sandbox() {
        return SandboxEndpoint
    }
    return ProductionEndpoint
}

// TransactionURL is the human-viewable dashboard page for a transaction.
func TransactionURL(transactionID int64) string {
    return fmt.Sprintf("%s/#/transactions/%d", DashboardURL, transactionID)
}

// Submit posts the transaction to the processor. It returns a
// *TransportError when no transaction occurred; a processor rejection comes
// back as a normal response with Errors set.
func (c *Client) Submit(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResponse, error) {
    ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
    defer cancel()

    endpoint := c.getEndpoint() + "/transactions"
    body := req.Values().Encode()

    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
    if err != nil {
        return nil, &TransportError{Op: "building request", Err: err}
    }
    httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    httpReq.Header.Set("Cache-Control", "no-cache")

    start := time.Now()
    resp, err := c.client.Do(httpReq)
    if err != nil {
        c.debug.Printf("transport error submitting transaction: %v", err)
        return nil, &TransportError{Op: "submitting transaction", Err: err}
    }
    defer resp.Body.Close()

    respBody, err := io.ReadAll(resp.Body)
    if err != nil {
        c.debug.Printf("error reading transaction response: %v", err)
        return nil, &TransportError{Op: "reading response", Err: err}
    }

    c.debug.Printf("transaction response received in %v: %s", time.Since(start), string(respBody))

    cleanBody := strings.TrimPrefix(string(respBody), "\ufeff")

    var response models.TransactionResponse
    if err := json.Unmarshal([]byte(cleanBody), &response); err != nil {
        return nil, &TransportError{Op: "decoding response", Err: fmt.Errorf("%v, response body: %s", err, cleanBody)}
    }

    return &response, nil
}
