package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders an amount with thousand separators and a currency code,
// e.g. "MUR 12,500" or "EUR 1,250.50".
func FormatPrice(amount float64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "MUR"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	out := sign + formatThousand(whole)
	if cents > 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	return currency + " " + out
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
