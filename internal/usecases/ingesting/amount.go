package ingesting

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	amountNoise  = regexp.MustCompile(`[^\d.\-]`)
	amountPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParseAmount mantém apenas dígitos, ponto e sinal e lê o maior prefixo numérico.
// Qualquer falha resulta em zero.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := amountNoise.ReplaceAllString(raw, "")

	number := amountPrefix.FindString(cleaned)
	if number == "" {
		return decimal.Zero
	}

	number = strings.TrimSuffix(number, ".")
	if strings.HasPrefix(number, ".") {
		number = "0" + number
	} else if strings.HasPrefix(number, "-.") {
		number = "-0" + number[1:]
	}

	amount, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
