// Package scheduler contém os serviços de agendamento de manutenção do ledger
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-import-api/infrastructure/repository"
	"github.com/vfg2006/ads-import-api/internal/config"
)

const staleImportCause = "importação abandonada: excedeu o orçamento de execução sem transição terminal"

type ImportRetentionConfig struct {
	CronSchedule      string
	Enabled           bool
	RetentionDays     int
	StaleAfterMinutes int
}

// ImportRetentionService resolve as pendências que o pipeline não consegue
// resolver sozinho: importações presas em processing depois de um aborto por
// orçamento viram failed, e entradas antigas do ledger são expurgadas junto
// com seus registros.
type ImportRetentionService struct {
	scheduler  *gocron.Scheduler
	importRepo repository.ImportRepository
	recordRepo repository.RecordRepository
	config     ImportRetentionConfig

	runMutex          sync.Mutex
	running           bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewImportRetentionService(
	importRepo repository.ImportRepository,
	recordRepo repository.RecordRepository,
	cfg *config.Config,
) *ImportRetentionService {
	retentionConfig := ImportRetentionConfig{
		CronSchedule:      cfg.ImportRetention.CronSchedule,
		Enabled:           cfg.ImportRetention.Enabled,
		RetentionDays:     cfg.ImportRetention.RetentionDays,
		StaleAfterMinutes: cfg.ImportRetention.StaleAfterMinutes,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
	}).Info("Configuração do agendador de retenção de importações carregada")

	return &ImportRetentionService{
		scheduler:  gocron.NewScheduler(time.Local),
		importRepo: importRepo,
		recordRepo: recordRepo,
		config:     retentionConfig,
	}
}

func (s *ImportRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de retenção de importações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retenção de importações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRetention(); err != nil {
			logrus.WithError(err).Error("Erro na rotina de retenção de importações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a rotina de retenção de importações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retenção de importações")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRetention executa uma passada de manutenção: marca importações
// abandonadas como failed e expurga entradas além da janela de retenção
func (s *ImportRetentionService) RunRetention() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		logrus.Warn("Rotina de retenção de importações já está em execução")
		return nil
	}

	s.running = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.running = false
		s.lastRunFinishedAt = time.Now()
	}()

	logrus.Info("Iniciando rotina de retenção de importações")

	staleCutoff := time.Now().Add(-time.Duration(s.config.StaleAfterMinutes) * time.Minute)
	staled, err := s.importRepo.FailStaleProcessing(staleCutoff, staleImportCause)
	if err != nil {
		logrus.WithError(err).Error("Erro ao marcar importações abandonadas como failed")
		return err
	}

	purged, err := s.purgeExpired()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"stale_failed": staled,
		"purged":       purged,
	}).Info("Rotina de retenção de importações concluída")

	return nil
}

func (s *ImportRetentionService) purgeExpired() (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	expired, err := s.importRepo.ListRecent(1000)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar entradas do ledger para expurgo")
		return 0, err
	}

	// Remove primeiro os registros de entidades de cada importação expirada,
	// depois as entradas do ledger de uma vez
	for _, entry := range expired {
		if !entry.ImportedAt.Before(cutoff) {
			continue
		}

		if err := s.recordRepo.DeleteByImportID(entry.ID); err != nil {
			logrus.WithField("import_id", entry.ID).WithError(err).
				Error("Erro ao expurgar registros da importação")
			return 0, err
		}
	}

	return s.importRepo.DeleteOlderThan(cutoff)
}

// TriggerManualRun dispara a rotina de retenção fora do agendamento
func (s *ImportRetentionService) TriggerManualRun() {
	go func() {
		if err := s.RunRetention(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual da rotina de retenção")
		}
	}()
}

// Status devolve o estado atual do agendador para o endpoint de monitoramento
func (s *ImportRetentionService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]interface{}{
		"enabled":              s.config.Enabled,
		"cron_schedule":        s.config.CronSchedule,
		"running":              s.running,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
