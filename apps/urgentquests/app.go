package urgentquests

import (
	"context"
	"embed"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"pso2news.dark-nova.me/apps/urgentquests/internal/jobs"
	"pso2news.dark-nova.me/apps/urgentquests/internal/repositories"
	"pso2news.dark-nova.me/apps/urgentquests/internal/services"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/broker"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
	"pso2news.dark-nova.me/internal/auth"
	"pso2news.dark-nova.me/internal/config"
)

const migrationsDir = "migrations"

type scheduledJob interface {
	ID() string
	RunEvery() time.Duration
	Run(ctx context.Context, logger *slog.Logger) error
}

//go:embed migrations/*.sql
var embedMigrations embed.FS

// UrgentQuests scrapes the Urgent Quest schedules on a fixed interval and
// serves the stored events as JSON and as an iCalendar feed.
type UrgentQuests struct {
	logger       *slog.Logger
	Config       config.Config
	Services     *services.Services
	Repositories *repositories.Repositories
	jobQueue     *threading.JobQueue
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *UrgentQuests {
	clients := Clients{
		PSO2:   pso2.New(logger, cfg.PSO2IndexURL, cfg.FetchCooldown),
		Broker: broker.New(logger, cfg.AMQPURL),
	}

	return NewInner(authService, logger, cfg, db, clients)
}

// NewInner builds the app around the given clients. Tests pass mocks here.
func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	clients Clients,
) *UrgentQuests {
	location, err := time.LoadLocation(cfg.ScheduleTimezone)
	if err != nil {
		panic(err)
	}

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)
	repos := repositories.New(postgres.NewSpanDB(db))

	app := &UrgentQuests{
		logger:       logger,
		Config:       cfg,
		Repositories: repos,
		Services: services.New(
			logger,
			cfg,
			location,
			jobQueue,
			repos,
			clients.PSO2,
			clients.Broker,
			authService,
		),
		jobQueue: jobQueue,
	}

	app.addJob(jobs.NewScheduleJob(app.Services.Schedules, cfg.RefreshInterval))
	app.addJob(jobs.NewReminderJob(app.Services.Reminders))

	return app
}

func (app *UrgentQuests) addJob(job scheduledJob) {
	err := app.jobQueue.AddJob(job, app.Services.WebSocket.UpdateState)
	if err != nil {
		panic(err)
	}

	app.Services.WebSocket.RegisterJob(job.ID(), job.RunEvery())
}

// ApplyMigrations creates or upgrades the urgentquests schema.
func (app *UrgentQuests) ApplyMigrations(db *pgxpool.Pool) error {
	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	return goose.Up(stdlib.OpenDBFromPool(db), migrationsDir)
}

func (app *UrgentQuests) GetName() string {
	return "urgentquests"
}
