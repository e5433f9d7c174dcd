package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
)

// SeedSyncConfig representa a configuração do agendador de reimportação do seed
type SeedSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SeedSyncService reimporta o feed de transações periodicamente. O feed é
// um conjunto estático na maior parte do tempo, então a reimportação vem
// desabilitada por padrão e existe para ambientes onde o feed muda.
type SeedSyncService struct {
	scheduler           *gocron.Scheduler
	config              SeedSyncConfig
	seeder              seeding.Seeder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSeedSyncService cria uma nova instância do serviço de reimportação do seed
func NewSeedSyncService(
	seeder seeding.Seeder,
	appConfig *config.Config,
) *SeedSyncService {
	syncConfig := SeedSyncConfig{
		CronSchedule: appConfig.SeedSync.CronSchedule,
		SyncEnabled:  appConfig.SeedSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reimportação do seed carregada")

	return &SeedSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		seeder:      seeder,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SeedSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reimportação agendada do seed desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reimportação do seed")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSeedSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reimportação do seed: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reimportação do seed")
		s.scheduler.Stop()
	}()

	return nil
}

// runSeedSync executa uma reimportação, garantindo que só uma rode por vez
func (s *SeedSyncService) runSeedSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Reimportação do seed ainda em andamento, execução ignorada")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	count, err := s.seeder.Initialize(ctx)
	if err != nil {
		if errors.Is(err, seeding.ErrSeedInProgress) {
			logrus.Warn("Seed manual em andamento, reimportação agendada ignorada")
			return
		}
		logrus.WithError(err).Error("Erro na reimportação agendada do seed")
		return
	}

	logrus.WithField("inserted", count).Info("Reimportação agendada do seed concluída")
}

// Status devolve o estado atual do agendador para diagnóstico
func (s *SeedSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]interface{}{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}
