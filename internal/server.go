package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/logging"
	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/misc"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/workouts/exercises"
	"github.com/2beens/gymlog/internal/workouts/logs"
	"github.com/2beens/gymlog/internal/workouts/plans"
	"github.com/2beens/gymlog/internal/workouts/sessions"
	"github.com/2beens/gymlog/internal/workouts/summaries"
	"github.com/2beens/gymlog/internal/workouts/users"
	"github.com/2beens/gymlog/pkg"
)

const mainRouterName = "main-router"

type userResolver interface {
	GetOrCreate(ctx context.Context, objectID string) (*users.User, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	validate *validator.Validate

	redisClient   *redis.Client
	authenticator auth.Authenticator
	userResolver  userResolver

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AuthSecret              string
	PostgresPassword        string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.EnsureSchema {
		if err := db.EnsureSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		log.Debugln("db schema ensured")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	closeStores := func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
		dbPool.Close()
	}

	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		tracing.InstrumentRedis(rdb)
		otelShutdown, err = tracing.HoneycombSetup("gymlog-backend")
		if err != nil {
			closeStores()
			return nil, err
		}
	}

	jwtAuthenticator, err := auth.NewJWTAuthenticator(auth.JWTConfig{
		Secret:   params.AuthSecret,
		Issuer:   params.Config.AuthIssuer,
		Audience: params.Config.AuthAudience,
	})
	if err != nil {
		otelShutdown()
		closeStores()
		return nil, fmt.Errorf("new jwt authenticator: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		validate:    apperr.NewValidator(),
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		authenticator: auth.NewCachedAuthenticator(
			jwtAuthenticator,
			rdb,
			params.Config.AuthCacheTTL,
			metricsManager,
		),
		userResolver: users.NewResolver(
			users.NewRepo(dbPool),
			params.Config.UsersCacheSizeMB,
			metricsManager,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware(mainRouterName))

	misc.NewHandler(s.dbPool, s.versionInfo).SetupRoutes(r)

	plans.NewHandler(
		plans.NewService(plans.NewRepo(s.dbPool)),
		s.validate,
		s.metricsManager,
	).SetupRoutes(r)

	sessions.NewHandler(
		sessions.NewService(sessions.NewRepo(s.dbPool)),
		s.validate,
		s.metricsManager,
	).SetupRoutes(r)

	exercises.NewHandler(
		exercises.NewService(exercises.NewRepo(s.dbPool)),
		s.validate,
		s.metricsManager,
	).SetupRoutes(r)

	logs.NewHandler(
		logs.NewService(logs.NewRepo(s.dbPool)),
		s.validate,
		s.metricsManager,
	).SetupRoutes(r)

	summaries.NewHandler(
		summaries.NewService(summaries.NewRepo(s.dbPool)),
		s.validate,
		s.metricsManager,
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apperr.Write(w, r, apperr.NotFound("Not Found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONResponse(w, map[string]string{"detail": "Method Not Allowed"}, http.StatusMethodNotAllowed)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.authenticator,
		s.userResolver,
		s.metricsManager,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CORSAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		mainRouterName,
		s.config.RateLimitPerMinute,
		s.metricsManager,
	))
	r.Use(middleware.LimitAndDrainBody(pkg.MaxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := logging.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	}
}
