package models

import "github.com/shopspring/decimal"

type CartItem struct {
    ProductID int             `json:"product_id"`
    Name      string          `json:"name"`
    Quantity  int             `json:"quantity"`
    Price     decimal.Decimal `json:"price"`
}
