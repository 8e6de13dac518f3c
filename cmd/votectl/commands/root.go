package commands

import (
	"context"
	"fmt"
	"time"

	"event-voting-backend/internal/config"
	"event-voting-backend/internal/database"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/repository"
	"event-voting-backend/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// cliActor is recorded in the activity log for changes made from the command line
var cliActor = service.Actor{Name: "votectl"}

var waitForDB time.Duration

var rootCmd = &cobra.Command{
	Use:   "votectl",
	Short: "Operator tool for the event voting backend",
	Long: `votectl manages the voting database: migrations, seeding projects,
exporting QR codes, resetting an event and printing vote reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Setup(cfg.LogLevel)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&waitForDB, "wait", 0, "keep retrying the database connection for this long (e.g. 60s)")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return cfg, nil
}

// app bundles the services the commands work with
type app struct {
	cfg         *config.Config
	db          *gorm.DB
	projects    *service.ProjectService
	reports     *service.ReportService
	maintenance *service.MaintenanceService
}

func (a *app) Close() {
	if err := database.Close(a.db); err != nil {
		logger.New().WithError(err).Warn("Failed to close database")
	}
}

// openApp connects to the database and wires the services. Migrations are
// applied unless skipMigrations is set.
func openApp(ctx context.Context, skipMigrations bool) (*app, error) {
	cfg, err := configFrom(ctx)
	if err != nil {
		return nil, err
	}

	db, err := connectWithRetry(ctx, cfg.DatabaseURL, &database.Options{
		LogLevel:       gormlogger.Silent,
		SkipMigrations: skipMigrations,
	}, waitForDB, 2*time.Second)
	if err != nil {
		return nil, err
	}

	projectRepo := repository.NewProjectRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	activity := service.NewActivityService(repository.NewActivityLogRepository(db))

	return &app{
		cfg: cfg,
		db:  db,
		projects: service.NewProjectService(
			projectRepo,
			service.NewPNGQRGenerator(cfg.QRSize),
			activity,
			service.NewValidator(),
			cfg.QRBaseURL,
		),
		reports:     service.NewReportService(voteRepo, projectRepo, activity),
		maintenance: service.NewMaintenanceService(db, activity),
	}, nil
}

// connectWithRetry keeps trying to open the database until wait has elapsed,
// which lets the CLI run right after a Postgres container starts.
func connectWithRetry(ctx context.Context, dsn string, opts *database.Options, wait, delay time.Duration) (*gorm.DB, error) {
	deadline := time.Now().Add(wait)
	for attempt := 1; ; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(delay).After(deadline) {
			return nil, fmt.Errorf("database not ready after %d attempts: %w", attempt, err)
		}
		if attempt%5 == 0 {
			logger.New().WithError(err).WithField("attempt", attempt).Info("Database not ready, retrying")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}
