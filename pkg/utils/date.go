package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseUnixBound interpreta um limite de janela recebido na query string.
// Aceita segundos Unix ou uma data YYYY-MM-DD (UTC); com endOfDay a data vira 23:59:59.
func ParseUnixBound(value string, endOfDay bool) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ts, nil
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return 0, fmt.Errorf("formato inválido %q: use segundos Unix ou YYYY-MM-DD", value)
	}

	if endOfDay {
		date = date.Add(24*time.Hour - time.Second)
	}

	return date.Unix(), nil
}
