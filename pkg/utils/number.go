package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage devolve part/total*100 com duas casas; zero quando total é zero
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	value, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return value
}

// SizeLabel formata o tamanho do arquivo em KB arredondado
func SizeLabel(bytes int64) string {
	return fmt.Sprintf("%d KB", int64(math.Round(float64(bytes)/1024)))
}
