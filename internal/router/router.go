package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "cattle-farm-manager/docs"
	memfeed "cattle-farm-manager/internal/adapters/changefeed/memory"
	mem "cattle-farm-manager/internal/adapters/storage/memory"
	pg "cattle-farm-manager/internal/adapters/storage/postgres"
	"cattle-farm-manager/internal/authz"
	"cattle-farm-manager/internal/domain/accounts"
	"cattle-farm-manager/internal/domain/admin"
	"cattle-farm-manager/internal/domain/cows"
	"cattle-farm-manager/internal/domain/health"
	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/maintenance"
	"cattle-farm-manager/internal/domain/milk"
	"cattle-farm-manager/internal/domain/notifications"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/domain/rotation"
	"cattle-farm-manager/internal/domain/topics"
	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/ports/auth"
	"cattle-farm-manager/internal/ports/changefeed"
)

type Options struct {
	Logger *zap.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, se usa el feed en memoria del proceso.
	Feed changefeed.Feed

	// Opcional: sin generador los endpoints /ai responden 503.
	AI topics.Generator

	// Cuentas que arrancan como admin.
	AdminAccountIDs []string

	// Huso de la finca; las fechas sin hora se interpretan en él.
	Location *time.Location

	AllowedOrigins []string
}

// NewRouter arma el árbol de rutas. ctx acota la vida de las suscripciones
// al change feed; cancelarlo detiene el centro de notificaciones.
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	feed := opts.Feed
	if feed == nil {
		feed = memfeed.NewFeed()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID", "X-Debug-User-Name"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		pastureRepo     pastures.Repository
		herdRepo        herds.Repository
		cowRepo         cows.Repository
		healthRepo      health.Repository
		milkRepo        milk.Repository
		maintenanceRepo maintenance.Repository
		accountRepo     accounts.Repository
	)

	if db := opts.DB; db != nil {
		pastureRepo = pg.NewPasturesRepo(db)
		herdRepo = pg.NewHerdsRepo(db, loc)
		cowRepo = pg.NewCowsRepo(db, loc)
		healthRepo = pg.NewHealthRepo(db, loc)
		milkRepo = pg.NewMilkRepo(db, loc)
		maintenanceRepo = pg.NewMaintenanceRepo(db, loc)
		accountRepo = pg.NewAccountsRepo(db)
	} else {
		pastureRepo = mem.NewPastureRepo()
		herdRepo = mem.NewHerdRepo()
		cowRepo = mem.NewCowRepo()
		healthRepo = mem.NewHealthRepo()
		milkRepo = mem.NewMilkRepo()
		maintenanceRepo = mem.NewMaintenanceRepo()
		accountRepo = mem.NewAccountRepo()
	}

	// Services por módulo
	accountsSvc := accounts.NewService(accountRepo, opts.AdminAccountIDs)
	pasturesSvc := pastures.NewService(pastureRepo, feed, log.Named("pastures"))
	herdsSvc := herds.NewService(herdRepo, feed, log.Named("herds"))
	rotationSvc := rotation.NewService(pasturesSvc, herdsSvc, loc)
	cowsSvc := cows.NewService(cowRepo)
	healthSvc := health.NewService(healthRepo, cowsSvc)
	milkSvc := milk.NewService(milkRepo, cowsSvc)
	maintenanceSvc := maintenance.NewService(maintenanceRepo, loc)
	topicsSvc := topics.NewService(opts.AI, log.Named("topics"))

	center := notifications.NewCenter(rotationSvc, feed, log.Named("notifications"))
	if err := center.Start(ctx); err != nil {
		return nil, err
	}

	// Rutas por módulo
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireUser)

		accounts.RegisterRoutes(pr, accountsSvc)
		cows.RegisterRoutes(pr, cowsSvc, loc,
			health.Routes(healthSvc, loc),
			milk.Routes(milkSvc, loc),
		)
		rotation.RegisterRoutes(pr, rotationSvc)
		notifications.RegisterRoutes(pr, center)
		maintenance.RegisterRoutes(pr, maintenanceSvc, loc)
		topics.RegisterRoutes(pr, topicsSvc)

		pr.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin(authz.New(accountsSvc)))

			admin.RegisterRoutes(ar)
			pastures.RegisterAdminRoutes(ar, pasturesSvc)
			herds.RegisterAdminRoutes(ar, herdsSvc, loc)
			accounts.RegisterAdminRoutes(ar, accountsSvc)
		})
	})

	return r, nil
}
