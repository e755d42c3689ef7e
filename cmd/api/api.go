package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/catalog"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/Skyedown/pohoda-skalite/internal/queue"
	"github.com/Skyedown/pohoda-skalite/internal/ratelimiter"
	"github.com/Skyedown/pohoda-skalite/internal/service"
	"github.com/Skyedown/pohoda-skalite/internal/store/mongo"
	"github.com/Skyedown/pohoda-skalite/internal/store/redis"
	"github.com/Skyedown/pohoda-skalite/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

type application struct {
	config             config
	logger             *zap.SugaredLogger
	rateLimiter        ratelimiter.Limiter
	storage            *mongo.Storage
	cartStore          *redis.CartStore
	broker             queue.Broker
	catalog            *catalog.Catalog
	poller             *ordering.Poller
	cartService        *service.CartService
	adminService       *service.AdminService
	checkoutService    *service.CheckoutService
	notificationWorker *worker.NotificationWorker
}

type config struct {
	addr        string
	env         string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	redis       redisConfig
	rabbitMQ    rabbitMQConfig
	hours       hoursConfig
	notify      notifyConfig
	timezone    string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type redisConfig struct {
	URL string
	TTL time.Duration
}

type rabbitMQConfig struct {
	URL           string
	PrefetchCount int
}

// hoursConfig carries the HH:MM ordering-window boundaries, read once at
// startup and never re-read mid-session.
type hoursConfig struct {
	PreorderStart string
	Opening       string
	LastOrder     string
	Closing       string
}

type notifyConfig struct {
	EndpointURL     string
	RestaurantEmail string
	RestaurantPhone string
	Timeout         time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.getMenuHandler)
		r.Get("/menu/{type}", app.getMenuByTypeHandler)
		r.Get("/menu/{type}/extras", app.getExtrasHandler)

		r.Get("/ordering-status", app.getOrderingStatusHandler)

		r.Get("/admin-settings", app.getAdminSettingsHandler)
		r.Post("/admin-settings", app.updateAdminSettingsHandler)
		r.Get("/admin-settings/wait-time-options", app.getWaitTimeOptionsHandler)

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", app.createCartHandler)

			r.Route("/{cart_id}", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.clearCartHandler)
				r.Post("/items", app.addCartItemHandler)
				r.Patch("/items/{index}", app.updateCartItemHandler)
				r.Delete("/items/{index}", app.removeCartItemHandler)
				r.Post("/checkout", app.checkoutHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// background loops
	app.poller.Start()

	if app.notificationWorker != nil {
		if err := app.notificationWorker.Start(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		app.poller.Stop()

		if app.notificationWorker != nil {
			app.notificationWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.cartStore != nil {
			if err := app.cartStore.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			} else {
				app.logger.Info("Redis connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
