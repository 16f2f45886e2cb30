package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/config"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/platform/mongodb"
	"github.com/mealmasterhq/meal-master-api/internal/service/auth"
	"github.com/mealmasterhq/meal-master-api/internal/service/mealrequest"
	"github.com/mealmasterhq/meal-master-api/internal/service/payments"
	"github.com/mealmasterhq/meal-master-api/internal/store"
)

// application holds the wired dependencies of a running server: the
// loaded configuration, the shared logger, the database handle, and the
// store and service layers built on top of it.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *mongodb.DB

	userStore     store.UserStore
	mealStore     store.MealStore
	upcomingStore store.UpcomingMealStore
	reviewStore   store.ReviewStore
	requestStore  store.RequestedMealStore
	paymentStore  store.PaymentStore
	membershipSt  store.MembershipStore

	jwtService     auth.JWTService
	intentService  payments.IntentService
	requestService *mealrequest.Service
}

// newApplication loads configuration, sets up logging, connects to the
// database and wires the store and service layers. The returned
// application owns the database connection; call cleanup when done.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := mongodb.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("connected to database", "name", cfg.Database.Name)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:        cfg,
		logger:        log,
		db:            db,
		userStore:     mongodb.NewUserStore(db),
		mealStore:     mongodb.NewMealStore(db),
		upcomingStore: mongodb.NewUpcomingMealStore(db),
		reviewStore:   mongodb.NewReviewStore(db),
		requestStore:  mongodb.NewRequestedMealStore(db),
		paymentStore:  mongodb.NewPaymentStore(db),
		membershipSt:  mongodb.NewMembershipStore(db),
		jwtService:    jwtService,
		intentService: payments.NewStripeIntentService(cfg.Stripe),
	}
	app.requestService = mealrequest.NewService(app.requestStore, app.mealStore)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
}

func closeDB(db *mongodb.DB, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Close(ctx); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
