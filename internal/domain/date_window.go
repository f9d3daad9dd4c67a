package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMinYear = 2020
	DefaultMaxYear = 2030

	serialMin = 25000
	serialMax = 100000
)

var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateWindow delimita os anos aceitos ao normalizar datas de planilhas
type DateWindow struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

func DefaultDateWindow() DateWindow {
	return DateWindow{MinYear: DefaultMinYear, MaxYear: DefaultMaxYear}
}

func (w DateWindow) contains(year int) bool {
	return year >= w.MinYear && year <= w.MaxYear
}

// Normalize converte a data bruta da planilha em uma data UTC.
// Ordem: número serial do Excel, DD/MM/AAAA, DD-MM-AAAA. Datas fora da janela falham.
func (w DateWindow) Normalize(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil && n > serialMin && n < serialMax {
		date := serialEpoch.AddDate(0, 0, int(math.Floor(n)))
		if w.contains(date.Year()) {
			return date, true
		}
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '/' || r == '-' {
			return r
		}
		return -1
	}, raw)

	switch {
	case strings.Contains(cleaned, "/"):
		return w.fromParts(strings.Split(cleaned, "/"))
	case strings.Contains(cleaned, "-"):
		return w.fromParts(strings.Split(cleaned, "-"))
	}

	return time.Time{}, false
}

func (w DateWindow) fromParts(parts []string) (time.Time, bool) {
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || !w.contains(year) {
		return time.Time{}, false
	}

	// dia que estoura o mês avança para o seguinte: 31/04 vira 01/05
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// PeriodKey retorna a chave AAAA-MM usada nos agrupamentos mensais
func PeriodKey(t time.Time) string {
	return t.Format("2006-01")
}
