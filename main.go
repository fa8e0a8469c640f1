package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artisan-storefront/config"
	"artisan-storefront/database"
	billingapi "artisan-storefront/internal/api/billing"
	stripewebhooks "artisan-storefront/internal/api/stripewebhook"
	routes "artisan-storefront/internal/app/http"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/authgateway"
	"artisan-storefront/internal/domain/billing"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/infra/stripe"
	"artisan-storefront/internal/localstorage"
	"artisan-storefront/internal/session"
	"artisan-storefront/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	Version = "0.1.0"
	appName = "artisan"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Artisan storefront session service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the storefront API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadEnv()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "gateway",
		Short: "Run the development auth gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadEnv()
			if err != nil {
				return err
			}
			return gateway(cmd.Context(), cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func newLogger(level string) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return logrus.NewEntry(log)
}

func newEngine(cfg *config.Config, log *logrus.Entry) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

// openStorage picks the backend that stands in for browser local storage.
func openStorage(cfg *config.Config, db *gorm.DB) (localstorage.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return localstorage.NewFile(cfg.StorageFile), nil
	case config.StoragePostgres:
		return localstorage.Gorm{DB: db}, nil
	case config.StorageRedis:
		return localstorage.NewRedis(cfg.RedisURL)
	default:
		return localstorage.NewMemory(), nil
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg.LogLevel)

	var db *gorm.DB
	if cfg.DBURL != "" {
		var err error
		if db, err = database.InitDB(cfg.DBURL); err != nil {
			return err
		}
	}

	base, err := openStorage(cfg, db)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	var payer billing.Payer = billing.SimulatedPayer{}
	if cfg.StripeSecretKey != "" {
		if payer, err = stripe.NewPayer(cfg.StripeSecretKey, cfg.AppURL); err != nil {
			return err
		}
		log.Info("Stripe checkout enabled")
	}

	var (
		recorder billing.Recorder = billing.NopRecorder{}
		orders   billingapi.OrderLister
		hook     *stripewebhooks.Handler
	)
	if db != nil {
		gormOrders := billing.GormOrders{DB: db}
		recorder, orders = gormOrders, gormOrders
		if cfg.StripeWebhookSecret != "" {
			hook = &stripewebhooks.Handler{Secret: cfg.StripeWebhookSecret, Orders: gormOrders, Log: log}
		}
	}

	seed, err := catalog.Seed()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	auth := authclient.New(cfg.AuthBaseURL, cfg.AuthTimeout)

	sessions := session.NewRegistry(func(id string) store.Options {
		return store.Options{
			SessionID:       id,
			Catalog:         seed.Clone(),
			Auth:            auth,
			Storage:         localstorage.Scoped(base, id),
			Payer:           payer,
			Orders:          recorder,
			NotificationTTL: cfg.NotificationTTL,
			Log:             log,
		}
	}, cfg.SessionIdleTimeout, log)
	limiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	if err := sessions.Start(cfg.SessionSweep, func() { limiter.Cleanup(10 * time.Minute) }); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	defer sessions.Stop()

	r := newEngine(cfg, log)
	routes.RegisterRoutes(r, routes.Deps{
		Sessions:     sessions,
		Media:        media.Store{Dir: cfg.MediaDir},
		Orders:       orders,
		Webhook:      hook,
		AuthLimiter:  limiter,
		CORSOrigin:   cfg.CORSOrigin,
		SecureCookie: cfg.SecureCookies,
		Log:          log,
	})

	log.WithField("port", cfg.Port).Info("storefront listening")
	return run(ctx, &http.Server{Addr: ":" + cfg.Port, Handler: r}, log)
}

func gateway(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg.LogLevel).WithField("component", "gateway")
	if err := cfg.RequireJWTSecret(); err != nil {
		return err
	}

	var accounts authgateway.Accounts = authgateway.NewMemoryAccounts()
	if cfg.DBURL != "" {
		db, err := database.InitDB(cfg.DBURL)
		if err != nil {
			return err
		}
		accounts = authgateway.GormAccounts{DB: db}
	}

	h := &authgateway.Handler{
		Accounts: accounts,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
		Log:      log,
	}
	r := newEngine(cfg, log)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.Register(r.Group("/api/auth"))

	log.WithField("port", cfg.GatewayPort).Info("auth gateway listening")
	return run(ctx, &http.Server{Addr: ":" + cfg.GatewayPort, Handler: r}, log)
}

// run serves until SIGINT/SIGTERM, then drains for up to ten seconds.
func run(ctx context.Context, srv *http.Server, log *logrus.Entry) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
