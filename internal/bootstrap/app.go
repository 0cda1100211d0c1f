package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/jobs"
	"careers-portal/internal/payments"
	"careers-portal/internal/receipts"
	"careers-portal/internal/shared/config"
	"careers-portal/internal/shared/server"
	"careers-portal/internal/shared/storage/db"
	"careers-portal/internal/tracker"
	"careers-portal/internal/wizard"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	HRClient *hrapi.Client

	ReceiptsRepo    receipts.Repo
	ReceiptsService *receipts.Service
	WizardSessions  *wizard.Store
	WizardService   *wizard.Service
	TrackerService  *tracker.Service
	JobsService     *jobs.Service
	PaymentsService *payments.Service

	WizardHandler   *wizard.Handler
	TrackerHandler  *tracker.Handler
	JobsHandler     *jobs.Handler
	PaymentsHandler *payments.Handler
}

// Build prepares shared dependencies and assembles the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	hrClient, err := hrapi.NewClient(cfg.HRAPIURL, cfg.HRAPIToken, cfg.HRAPITimeout)
	if err != nil {
		return nil, fmt.Errorf("hr api client: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		HRClient: hrClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		WizardHandler:   app.WizardHandler,
		TrackerHandler:  app.TrackerHandler,
		JobsHandler:     app.JobsHandler,
		PaymentsHandler: app.PaymentsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory receipts")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory receipts: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory receipts: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var receiptsRepo receipts.Repo
	if app.DB != nil {
		receiptsRepo = &receipts.PGRepo{DB: app.DB}
	} else {
		receiptsRepo = receipts.NewMemoryRepo()
	}
	receiptsSvc := receipts.NewService(receiptsRepo)

	sessions := wizard.NewStore(app.Config.SessionTTL)

	app.ReceiptsRepo = receiptsRepo
	app.ReceiptsService = receiptsSvc
	app.WizardSessions = sessions
	app.WizardService = wizard.NewService(app.HRClient, sessions, receiptsSvc)
	app.TrackerService = tracker.NewService(app.HRClient)
	app.JobsService = jobs.NewService(app.HRClient)
	app.PaymentsService = payments.NewService(app.HRClient)

	app.WizardHandler = wizard.NewHandler(app.WizardService)
	app.TrackerHandler = tracker.NewHandler(app.TrackerService)
	app.JobsHandler = jobs.NewHandler(app.JobsService)
	app.PaymentsHandler = payments.NewHandler(app.PaymentsService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
