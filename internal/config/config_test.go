package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		App:      App{LogLevel: "info", LogFormat: "text"},
		Server:   Server{Host: "localhost", Port: "8000"},
		Database: Database{Driver: "postgres", URL: "localhost:5432/ticketing", User: "postgres"},
		Auth:     Auth{Secret: "um-segredo-com-tamanho-suficiente", TokenTTL: time.Hour},
		ReconciliationAudit: ReconciliationAudit{
			LookbackDays: 7,
			Currency:     "USD",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "configuração completa",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "segredo curto demais",
			mutate:  func(cfg *Config) { cfg.Auth.Secret = "curto" },
			wantErr: true,
		},
		{
			name:    "formato de log desconhecido",
			mutate:  func(cfg *Config) { cfg.App.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name: "auditoria habilitada sem lojas",
			mutate: func(cfg *Config) {
				cfg.ReconciliationAudit.Enabled = true
				cfg.ReconciliationAudit.CronSchedule = "0 3 * * *"
				cfg.ReconciliationAudit.PrincipalUserID = 1
			},
			wantErr: true,
		},
		{
			name: "auditoria habilitada completa",
			mutate: func(cfg *Config) {
				cfg.ReconciliationAudit.Enabled = true
				cfg.ReconciliationAudit.CronSchedule = "0 3 * * *"
				cfg.ReconciliationAudit.PrincipalUserID = 1
				cfg.ReconciliationAudit.StoreIDs = []int64{1, 2}
			},
		},
		{
			name:    "moeda com tamanho inválido",
			mutate:  func(cfg *Config) { cfg.ReconciliationAudit.Currency = "REAL" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
