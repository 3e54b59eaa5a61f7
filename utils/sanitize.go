package utils

import (
    "regexp"
    "strings"
)

var (
    nonDigits  = regexp.MustCompile(`[^0-9]`)
    htmlTags   = regexp.MustCompile(`<[^>]*>`)
    whitespace = regexp.MustCompile(`[ \t\r\n]+`)
)

// OnlyNumbers strips every character outside 0-9. Applied to any field that
// works as a numeric identifier on the processor side (phone, postal code,
// document numbers, card number, card expiry).
func OnlyNumbers(s string) string {
    return nonDigits.ReplaceAllString(s, "")
}

// SanitizeTextField strips markup and control characters from a value before
// it is stored as order metadata, and collapses runs of whitespace.
func SanitizeTextField(s string) string {
    s = htmlTags.ReplaceAllString(s, "")
    s = whitespace.ReplaceAllString(s, " ")

    var b strings.Builder
    for _, r := range s {
        if r < 0x20 || r == 0x7f {
            continue
        }
        b.WriteRune(r)
    }

    return strings.TrimSpace(b.String())
}
