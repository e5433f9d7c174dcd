package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
)

type fakeSeeder struct {
	count int
	err   error
	calls int
}

func (f *fakeSeeder) Initialize(ctx context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		SeedSync: config.SeedSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestSeedSyncService_Start_Disabled(t *testing.T) {
	seeder := &fakeSeeder{}
	service := NewSeedSyncService(seeder, newTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, seeder.calls)
}

func TestSeedSyncService_runSeedSync(t *testing.T) {
	t.Run("Execução com sucesso atualiza o status", func(t *testing.T) {
		seeder := &fakeSeeder{count: 60}
		service := NewSeedSyncService(seeder, newTestConfig(true))

		service.runSeedSync(context.Background())

		assert.Equal(t, 1, seeder.calls)

		status := service.Status()
		assert.Equal(t, false, status["running"])
		assert.NotZero(t, status["last_started_at"])
		assert.NotZero(t, status["last_completed_at"])
	})

	t.Run("Seed manual em andamento não é tratado como erro fatal", func(t *testing.T) {
		seeder := &fakeSeeder{err: seeding.ErrSeedInProgress}
		service := NewSeedSyncService(seeder, newTestConfig(true))

		service.runSeedSync(context.Background())

		assert.Equal(t, 1, seeder.calls)
		assert.Equal(t, false, service.Status()["running"])
	})

	t.Run("Erro do seed deixa o agendador pronto para a próxima execução", func(t *testing.T) {
		seeder := &fakeSeeder{err: assert.AnError}
		service := NewSeedSyncService(seeder, newTestConfig(true))

		service.runSeedSync(context.Background())
		service.runSeedSync(context.Background())

		assert.Equal(t, 2, seeder.calls)
	})
}

func TestSeedSyncService_Status(t *testing.T) {
	service := NewSeedSyncService(&fakeSeeder{}, newTestConfig(true))

	status := service.Status()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 2 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
}
