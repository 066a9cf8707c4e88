package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/prepit-kitchen/prepit/docs"
	"github.com/prepit-kitchen/prepit/internal/facades"
	"github.com/prepit-kitchen/prepit/internal/handlers"
	"github.com/prepit-kitchen/prepit/internal/jobs"
	"github.com/prepit-kitchen/prepit/internal/jwt"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/middlewares"
	"github.com/prepit-kitchen/prepit/internal/migrations"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"github.com/prepit-kitchen/prepit/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	Timezone    string
	GRPCPort    string
	LoginPerMin int
	TrustProxy  bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	CatalogBaseURL     string
	CatalogRefreshSpec string

	JWTSecretKey string
	JWTExpSecond int

	RootPassword string
}

// @title PrepIt Kitchen API
// @version 1.0.0
// @description Station prep lists, prep sheet submissions, recipes and users for a restaurant kitchen
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string, dst *int) {
		if err != nil {
			return
		}
		if *dst, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.Timezone = getEnv("APP_TIMEZONE", "UTC")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	getInt("LOGIN_RATE_PER_MINUTE", "10", &cfg.LoginPerMin)
	if err == nil {
		if cfg.TrustProxy, err = strconv.ParseBool(getEnv("APP_TRUST_PROXY", "false")); err != nil {
			err = fmt.Errorf("APP_TRUST_PROXY: %w", err)
		}
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	getInt("POSTGRES_PORT", "5432", &cfg.PGPort)
	getInt("POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PGMaxOpenConns)
	getInt("POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PGMaxIdleConns)

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	getInt("REDIS_PORT", "6379", &cfg.RedisPort)
	getInt("REDIS_DB", "0", &cfg.RedisDB)
	getInt("REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize)
	getInt("REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns)
	getInt("REDIS_EXP_SECOND", "300", &cfg.RedisExpSecond)

	// Kafka config, publishing is disabled without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "prep-sheet-submitted")

	// Remote catalog config
	cfg.CatalogBaseURL = getEnv("CATALOG_BASE_URL", "http://localhost:3000")
	cfg.CatalogRefreshSpec = getEnv("CATALOG_REFRESH_SPEC", "@every 15m")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	getInt("JWT_EXP_SECOND", "3600", &cfg.JWTExpSecond)

	cfg.RootPassword = getEnv("ROOT_PASSWORD", "")

	return cfg, err
}

// application bundles the services the HTTP layer is built from.
type application struct {
	db          *sqlx.DB
	tokens      *jwt.JWT
	limiter     *middlewares.RateLimiter
	trustProxy  bool
	location    *time.Location
	auth        *services.AuthService
	users       *services.UserService
	stations    *services.StationService
	prepItems   *services.PrepItemService
	recipes     *services.RecipeService
	submissions *services.SubmissionService
	catalog     *services.CatalogService
	diagnostics *services.DiagnosticsService
}

// newRouter mounts every route with its middleware chain.
func newRouter(app *application, swaggerURL string) http.Handler {
	can := middlewares.RequireCapability
	tx := middlewares.TxMiddleware(app.db)

	r := chi.NewRouter()
	// Forwarding headers are client controlled unless a proxy in front overwrites them.
	if app.trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/healthz", handlers.NewHealthHandler(app.db))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api/v1", func(r chi.Router) {
		r.With(app.limiter.Middleware).Post("/login", handlers.NewLoginHandler(app.auth))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(app.tokens))

			r.With(can(models.CapUpdateOwnProfile)).Get("/me", handlers.NewGetMeHandler(app.users))
			r.With(can(models.CapUpdateOwnProfile), tx).Put("/me", handlers.NewUpdateMeHandler(app.users))

			r.Route("/users", func(r chi.Router) {
				r.Use(can(models.CapManageUsers), tx)
				r.Get("/", handlers.NewListUsersHandler(app.users))
				r.Post("/", handlers.NewCreateUserHandler(app.users))
				r.Post("/root/password", handlers.NewResetRootPasswordHandler(app.users))
				r.Put("/{id}", handlers.NewUpdateUserHandler(app.users))
				r.Delete("/{id}", handlers.NewDeleteUserHandler(app.users))
			})

			r.Route("/stations", func(r chi.Router) {
				r.With(can(models.CapViewStations)).Get("/", handlers.NewListStationsHandler(app.stations))
				r.With(can(models.CapManageStations)).Post("/", handlers.NewCreateStationHandler(app.stations))
				r.With(can(models.CapManageStations)).Post("/delete", handlers.NewDeleteStationsHandler(app.stations))
				r.With(can(models.CapManageStations)).Delete("/{id}", handlers.NewDeleteStationHandler(app.stations))

				r.With(can(models.CapViewStations)).Get("/{station}/items", handlers.NewListPrepItemsHandler(app.prepItems))
				r.With(can(models.CapManageStations)).Post("/{station}/items", handlers.NewCreatePrepItemHandler(app.prepItems))
				r.With(can(models.CapSubmitPrepSheet)).Post("/{station}/submissions", handlers.NewSubmitPrepSheetHandler(app.submissions, app.users))
			})

			r.Route("/items", func(r chi.Router) {
				r.Use(can(models.CapManageStations))
				r.Post("/delete", handlers.NewDeletePrepItemsHandler(app.prepItems))
				r.Put("/{id}", handlers.NewUpdatePrepItemHandler(app.prepItems))
				r.Delete("/{id}", handlers.NewDeletePrepItemHandler(app.prepItems))
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Use(can(models.CapViewCompletedLists))
				r.Get("/", handlers.NewListSubmissionsHandler(app.submissions))
				r.Get("/days", handlers.NewListSubmissionDaysHandler(app.submissions, app.location))
				r.Get("/{id}", handlers.NewGetSubmissionHandler(app.submissions))
			})

			r.Route("/recipes", func(r chi.Router) {
				r.With(can(models.CapViewRecipes)).Get("/", handlers.NewListRecipesHandler(app.recipes))
				r.With(can(models.CapViewRecipes)).Get("/{id}", handlers.NewGetRecipeHandler(app.recipes))
				r.With(can(models.CapManageRecipes)).Post("/", handlers.NewCreateRecipeHandler(app.recipes))
				r.With(can(models.CapManageRecipes)).Put("/{id}", handlers.NewUpdateRecipeHandler(app.recipes))
				r.With(can(models.CapManageRecipes)).Delete("/{id}", handlers.NewDeleteRecipeHandler(app.recipes))
			})

			r.Route("/catalog", func(r chi.Router) {
				r.Use(can(models.CapViewRemoteCatalog))
				r.Get("/employees", handlers.NewEmployeesHandler(app.catalog))
				r.Get("/menus", handlers.NewMenusHandler(app.catalog))
				r.Get("/menu-items", handlers.NewMenuItemsHandler(app.catalog))
			})

			r.With(can(models.CapViewDiagnostics)).Get("/diagnostics", handlers.NewDiagnosticsHandler(app.diagnostics))
		})
	})

	return r
}

// newApplication builds repositories and services on top of the given clients.
// kafkaWriter may be nil.
func newApplication(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter, loc *time.Location) *application {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	stationReadRepo := repositories.NewStationReadRepository(db)
	prepItemReadRepo := repositories.NewPrepItemReadRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	submittedReadRepo := repositories.NewSubmittedPrepItemReadRepository(db)
	catalogCacheRepo := repositories.NewCatalogCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	catalogFacade := facades.NewCatalogHTTPFacade(cfg.CatalogBaseURL, &http.Client{Timeout: 10 * time.Second})

	app := &application{
		db:          db,
		tokens:      tokens,
		limiter:     middlewares.NewRateLimiter(cfg.LoginPerMin),
		trustProxy:  cfg.TrustProxy,
		location:    loc,
		auth:        services.NewAuthService(userReadRepo, tokens),
		users:       services.NewUserService(userReadRepo, userWriteRepo),
		stations:    services.NewStationService(stationReadRepo, repositories.NewStationWriteRepository(db)),
		prepItems:   services.NewPrepItemService(prepItemReadRepo, repositories.NewPrepItemWriteRepository(db)),
		recipes:     services.NewRecipeService(recipeReadRepo, repositories.NewRecipeWriteRepository(db)),
		catalog:     services.NewCatalogService(catalogFacade, catalogCacheRepo),
		diagnostics: services.NewDiagnosticsService(services.RecordCounters{
			Stations:           stationReadRepo,
			PrepItems:          prepItemReadRepo,
			Recipes:            recipeReadRepo,
			SubmittedPrepItems: submittedReadRepo,
			Users:              userReadRepo,
		}, db, catalogFacade),
	}
	app.submissions = services.NewSubmissionService(submittedReadRepo, repositories.NewSubmittedPrepItemWriteRepository(db), kafkaWriter)
	return app
}

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, "service", "prepit", "version", buildVersion); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer keyed by station, so one station's events stay ordered
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, submission events are not published")
	}

	app := newApplication(cfg, db, rdb, kafkaWriter, loc)

	created, err := app.users.EnsureRoot(ctx, cfg.RootPassword)
	switch {
	case errors.Is(err, services.ErrEmptyPassword):
		logger.Log.Warn("ROOT_PASSWORD is empty, root user was not provisioned")
	case err != nil:
		return fmt.Errorf("provision root user: %w", err)
	case created:
		logger.Log.Info("root user provisioned")
	}

	// Catalog cache refresh
	scheduler, err := jobs.NewScheduler(cfg.CatalogRefreshSpec, loc, jobs.NewCatalogRefreshJob(app.catalog, time.Minute))
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	// gRPC health service mirrors database readiness
	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(app, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()
	go watchReadiness(ctxShutdown, db, healthServer, 10*time.Second)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// watchReadiness sets the gRPC health status from database pings until ctx is done.
func watchReadiness(ctx context.Context, db handlers.Pinger, hs *health.Server, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		status := healthpb.HealthCheckResponse_SERVING
		if err := db.PingContext(ctx); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus("", status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
