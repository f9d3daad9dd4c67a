package domain

import (
	"errors"
	"strings"
	"time"
)

// All é o valor que desliga um filtro de período ou cliente
const All = "all"

var (
	ErrInvalidPeriod    = errors.New("período inválido, use o formato AAAA-MM")
	ErrInvalidDateRange = errors.New("intervalo de datas inválido")
)

// DateRange é um intervalo inclusivo; qualquer ponta pode ficar aberta
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains compara pela data ISO (AAAA-MM-DD), ignorando horário
func (r DateRange) Contains(t time.Time) bool {
	day := t.Format(time.DateOnly)
	if r.Start != nil && day < r.Start.Format(time.DateOnly) {
		return false
	}
	if r.End != nil && day > r.End.Format(time.DateOnly) {
		return false
	}
	return true
}

// Filter é a seleção do painel. Os critérios são combinados com AND.
type Filter struct {
	Period    string    `json:"period"`
	Client    string    `json:"client"`
	DateRange DateRange `json:"dateRange"`
}

func NewFilter() Filter {
	return Filter{Period: All, Client: All}
}

func (f Filter) HasPeriod() bool {
	return f.Period != "" && f.Period != All
}

func (f Filter) HasClient() bool {
	client := strings.TrimSpace(f.Client)
	return client != "" && client != All
}

// RequiresDate indica se registros sem data válida devem ser descartados
func (f Filter) RequiresDate() bool {
	return f.HasPeriod() || !f.DateRange.IsZero()
}

// Validate confere o formato do período e a ordem do intervalo
func (f Filter) Validate() error {
	if f.HasPeriod() {
		if _, err := time.Parse("2006-01", f.Period); err != nil {
			return ErrInvalidPeriod
		}
	}
	if f.DateRange.Start != nil && f.DateRange.End != nil && f.DateRange.End.Before(*f.DateRange.Start) {
		return ErrInvalidDateRange
	}
	return nil
}
