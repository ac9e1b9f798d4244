package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "25", FormatMoney(25))
	require.Equal(t, "1,250", FormatMoney(1250))
	require.Equal(t, "12,500.5", FormatMoney(12500.5))
}

func TestPriceString(t *testing.T) {
	require.Equal(t, "", PriceString(nil))

	whole := float64(5)
	require.Equal(t, "5", PriceString(&whole))

	fractional := 7.25
	require.Equal(t, "7.25", PriceString(&fractional))
}

func TestTruncateContent(t *testing.T) {
	require.Equal(t, "short", TruncateContent("short", 10))
	require.Equal(t, "long ti...", TruncateContent("long title here", 7))

	// Cuts on rune boundaries, never inside a multi-byte character.
	require.Equal(t, "طماطم ط...", TruncateContent("طماطم طازجة من المزرعة", 7))
}
