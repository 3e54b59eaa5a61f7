package utils

import (
    "strconv"

    "github.com/shopspring/decimal"
)

// FormatAmount renders an order total as an integer string of minor currency
// units, e.g. 19.90 -> "1990". Totals are carried as decimals so the result
// does not depend on locale separators or float rounding.
func FormatAmount(total decimal.Decimal) string {
    cents := total.Shift(2).Round(0).IntPart()
    if cents < 0 {
        cents = 0
    }
    return strconv.FormatInt(cents, 10)
}
