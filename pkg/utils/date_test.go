package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUnixBound(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    string
		endOfDay bool
		want     int64
		wantErr  bool
	}{
		{name: "segundos unix", value: "1710460800", want: 1710460800},
		{name: "segundos unix ignoram fim do dia", value: "1710460800", endOfDay: true, want: 1710460800},
		{name: "data como início", value: "2024-03-15", want: day.Unix()},
		{name: "data como fim inclusivo", value: "2024-03-15", endOfDay: true, want: day.Add(24*time.Hour - time.Second).Unix()},
		{name: "vazio", value: "", wantErr: true},
		{name: "formato inválido", value: "15/03/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnixBound(tt.value, tt.endOfDay)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, first, violationIDLength)

	second, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
