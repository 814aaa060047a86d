package backup

import (
	"context"
	"time"

	"gestion-api/core/config"
	"gestion-api/core/logger"
	"gestion-api/modules/backup/service"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// TaskTypeBackup is the asynq task type for a database backup run.
const TaskTypeBackup = "backup:run"

// NewBackupTask builds the periodic backup task. The payload is empty; the
// run exports everything.
func NewBackupTask() *asynq.Task {
	return asynq.NewTask(TaskTypeBackup, nil)
}

// Worker runs the asynq server and scheduler for periodic backups.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	svc       service.BackupServiceInterface
	redisOpt  asynq.RedisClientOpt
	cron      string
}

// NewWorker creates the backup worker from the Redis and backup config.
func NewWorker(cfg *config.Config, svc service.BackupServiceInterface) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	cron := cfg.Backup.Cron
	if cron == "" {
		// Nightly at 03:00.
		cron = "0 3 * * *"
	}

	return &Worker{
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 1,
			Logger:      asynqLogger{},
		}),
		scheduler: asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
			Logger: asynqLogger{},
		}),
		svc:      svc,
		redisOpt: redisOpt,
		cron:     cron,
	}
}

// Start verifies Redis connectivity, then launches the asynq server and
// registers the cron entry. Non-blocking.
func (w *Worker) Start() error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     w.redisOpt.Addr,
		Password: w.redisOpt.Password,
		DB:       w.redisOpt.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return err
	}
	rdb.Close()

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeBackup, w.handleBackup)

	if err := w.server.Start(mux); err != nil {
		return err
	}

	if _, err := w.scheduler.Register(w.cron, NewBackupTask()); err != nil {
		w.server.Shutdown()
		return err
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return err
	}

	logger.Info("Backup worker started", "cron", w.cron)
	return nil
}

// Shutdown stops the scheduler and drains the server.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func (w *Worker) handleBackup(ctx context.Context, _ *asynq.Task) error {
	sauvegarde, appErr := w.svc.Run(ctx)
	if appErr != nil {
		logger.Error("Backup task failed", "error", appErr)
		return appErr
	}
	logger.Info("Backup task completed", "fichier", sauvegarde.NomFichier)
	return nil
}

// asynqLogger routes asynq's own log lines through the application logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq", "msg", args) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq", "msg", args) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq", "msg", args) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq", "msg", args) }
func (asynqLogger) Fatal(args ...any) { logger.Error("asynq", "msg", args) }
