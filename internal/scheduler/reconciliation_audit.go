// Package scheduler contém os jobs agendados que exercitam o motor analítico
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

var ErrAuditAlreadyRunning = errors.New("auditoria de reconciliação já está em execução")

// PrincipalSource resolve o principal usado pelo job a partir do banco
type PrincipalSource interface {
	PrincipalForUser(ctx context.Context, userID int) (*domain.Principal, error)
}

type ReconciliationAuditConfig struct {
	CronSchedule    string
	Enabled         bool
	Lookback        time.Duration
	StoreIDs        []int64
	Currency        string
	PrincipalUserID int
}

// StoreAuditResult é o resultado da reconciliação de uma loja
type StoreAuditResult struct {
	StoreID       int64  `json:"store_id"`
	Rows          int    `json:"rows"`
	NetTotalCents int64  `json:"net_total_cents"`
	Error         string `json:"error,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
}

// AuditReport resume uma execução. Error indica que a execução foi abortada antes das lojas.
type AuditReport struct {
	Start     int64              `json:"start"`
	End       int64              `json:"end"`
	Currency  string             `json:"currency"`
	Stores    []StoreAuditResult `json:"stores"`
	Failures  int                `json:"failures"`
	Error     string             `json:"error,omitempty"`
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
}

type ReconciliationAuditService struct {
	scheduler       *gocron.Scheduler
	queryService    analytics.QueryService
	principals      PrincipalSource
	config          ReconciliationAuditConfig
	logger          log.Logger
	now             func() time.Time
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastReport      *AuditReport
}

func NewReconciliationAuditService(
	queryService analytics.QueryService,
	principals PrincipalSource,
	cfg *config.Config,
	logger log.Logger,
) *ReconciliationAuditService {
	auditConfig := ReconciliationAuditConfig{
		CronSchedule:    cfg.ReconciliationAudit.CronSchedule,
		Enabled:         cfg.ReconciliationAudit.Enabled,
		Lookback:        time.Duration(cfg.ReconciliationAudit.LookbackDays) * 24 * time.Hour,
		StoreIDs:        cfg.ReconciliationAudit.StoreIDs,
		Currency:        cfg.ReconciliationAudit.Currency,
		PrincipalUserID: cfg.ReconciliationAudit.PrincipalUserID,
	}

	logger.WithFields(log.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"store_ids":     auditConfig.StoreIDs,
		"lookback":      auditConfig.Lookback.String(),
	}).Info("Configuração do agendador de auditoria de reconciliação carregada")

	return &ReconciliationAuditService{
		scheduler:    gocron.NewScheduler(time.UTC),
		queryService: queryService,
		principals:   principals,
		config:       auditConfig,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ReconciliationAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Cron de auditoria de reconciliação desabilitada por configuração")
		return nil
	}

	s.logger.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria de reconciliação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil && !errors.Is(err, ErrAuditAlreadyRunning) {
			s.logger.WithError(err).Error("Erro na auditoria de reconciliação")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de reconciliação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Parando cron de auditoria de reconciliação")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit calcula a receita líquida de cada loja configurada na janela de lookback.
// Cada loja é consultada isoladamente para que uma violação não esconda as demais.
func (s *ReconciliationAuditService) RunAudit(ctx context.Context) (*AuditReport, error) {
	if !s.begin() {
		s.logger.Warn("Auditoria de reconciliação já está em execução")
		return nil, ErrAuditAlreadyRunning
	}

	return s.run(ctx)
}

// run executa a auditoria; quem chama já deve ter reservado a execução com begin
func (s *ReconciliationAuditService) run(ctx context.Context) (*AuditReport, error) {
	startedAt := s.now()
	report := &AuditReport{StartedAt: startedAt}
	defer func() { s.finish(report) }()

	principal, err := s.principals.PrincipalForUser(ctx, s.config.PrincipalUserID)
	if err != nil {
		err = fmt.Errorf("erro ao resolver principal da auditoria: %w", err)
		report.Error = err.Error()
		report.Duration = s.now().Sub(startedAt)
		return nil, err
	}
	ctx = authenticating.ContextWithPrincipal(ctx, principal)

	end := startedAt.UTC().Unix()
	start := startedAt.UTC().Add(-s.config.Lookback).Unix()
	report.Start, report.End, report.Currency = start, end, s.config.Currency

	s.logger.WithFields(log.Fields{
		"start":     start,
		"end":       end,
		"store_ids": s.config.StoreIDs,
	}).Info("Iniciando auditoria de reconciliação")

	for _, storeID := range s.config.StoreIDs {
		result := s.auditStore(ctx, storeID, start, end)
		if result.Error != "" {
			report.Failures++
		}
		report.Stores = append(report.Stores, result)
	}

	report.Duration = s.now().Sub(startedAt)

	s.logger.WithFields(log.Fields{
		"stores":   len(report.Stores),
		"failures": report.Failures,
		"duration": report.Duration.String(),
	}).Info("Auditoria de reconciliação concluída")

	return report, nil
}

func (s *ReconciliationAuditService) auditStore(ctx context.Context, storeID, start, end int64) StoreAuditResult {
	query := domain.NewQuery(domain.ScopeAdmin, []int64{storeID}, start, end, s.config.Currency)
	result := StoreAuditResult{StoreID: storeID}

	rows, err := s.queryService.NetRevenue(ctx, query)
	if err != nil {
		result.Error = err.Error()
		var analyticsErr *domain.AnalyticsError
		if errors.As(err, &analyticsErr) {
			result.ErrorCode = analyticsErr.Code
		}
		s.logger.WithError(err).WithField("store_id", storeID).Error("Falha na reconciliação da loja")
		return result
	}

	result.Rows = len(rows)
	for _, row := range rows {
		result.NetTotalCents += row.AmountCents
	}

	s.logger.WithFields(log.Fields{
		"store_id":        storeID,
		"rows":            result.Rows,
		"net_total_cents": result.NetTotalCents,
	}).Debug("Loja reconciliada")

	return result
}

func (s *ReconciliationAuditService) begin() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}

	s.running = true
	s.lastStartedAt = s.now()
	return true
}

func (s *ReconciliationAuditService) finish(report *AuditReport) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	s.lastCompletedAt = s.now()
	s.lastReport = report
}

// TriggerManualRun dispara a auditoria em segundo plano; retorna false se já houver uma em andamento
func (s *ReconciliationAuditService) TriggerManualRun() bool {
	if !s.begin() {
		return false
	}

	go func() {
		if _, err := s.run(context.Background()); err != nil {
			s.logger.WithError(err).Error("Erro na execução manual da auditoria de reconciliação")
		}
	}()

	return true
}

func (s *ReconciliationAuditService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"audit_enabled":           s.config.Enabled,
		"audit_cron":              s.config.CronSchedule,
		"audit_running":           s.running,
		"last_audit_started_at":   s.lastStartedAt,
		"last_audit_completed_at": s.lastCompletedAt,
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}

	return status
}
