package util

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders an amount for notification bodies, e.g. 12500.5 -> "12,500.5".
// Whole amounts drop the decimals: 25 -> "25".
func FormatMoney(amount float64) string {
	if amount == math.Trunc(amount) {
		return humanize.Comma(int64(amount))
	}
	return humanize.CommafWithDigits(amount, 2)
}

// PriceString coerces a price for the push data payload; an absent price
// becomes the empty string, matching how the client treats missing fields.
func PriceString(price *float64) string {
	if price == nil {
		return ""
	}
	if *price == math.Trunc(*price) {
		return strconv.FormatInt(int64(*price), 10)
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

// TruncateContent shortens a title for display. The cut counts runes, not
// bytes, so multi-byte titles are never split mid-character.
func TruncateContent(title string, maxLength int) string {
	runes := []rune(title)
	if len(runes) <= maxLength {
		return title
	}
	return string(runes[:maxLength]) + "..."
}
