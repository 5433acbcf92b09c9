// @title Church Attendance API
// @version 1.0
// @description Children's service registration, check-in, schedule and family management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"churchattendance/config"
	_ "churchattendance/docs"
	"churchattendance/internal/adapters/auth"
	"churchattendance/internal/adapters/email"
	"churchattendance/internal/adapters/export"
	"churchattendance/internal/adapters/qrcode"
	"churchattendance/internal/adapters/store"
	"churchattendance/internal/database"
	deliveryhttp "churchattendance/internal/delivery/http"
	"churchattendance/internal/delivery/http/controllers"
	"churchattendance/internal/domain"
	"churchattendance/internal/observability"
	"churchattendance/internal/repository/postgres"
	"churchattendance/internal/services"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Environment, cfg.Release)
	if err != nil {
		logger.Warn("sentry disabled", "err", err)
	}
	defer flush()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		return err
	}

	drafts, revocations, closeStores, err := newStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
		ResendAPIKey: cfg.Email.ResendAPIKey,
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	attendanceRepo := postgres.NewAttendanceRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	familyRepo := postgres.NewFamilyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWT(cfg.JWTSecret)

	registrationSvc := services.NewRegistrationService(drafts, attendanceRepo, scheduleRepo, services.NewCodeGenerator(), services.RegistrationOptions{
		RequireEvent: cfg.RequireEvent,
		TimeSlots:    cfg.TimeSlots,
		Location:     cfg.Location,
		Timeout:      cfg.RequestTimeout,
	}, logger)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, export.NewAttendanceWorkbook(), cfg.Location, cfg.RequestTimeout)
	scheduleSvc := services.NewScheduleService(scheduleRepo, cfg.RequestTimeout)
	familySvc := services.NewFamilyService(familyRepo, cfg.RequestTimeout)
	emailSvc := services.NewEmailService(mailer, renderer, logger)
	accountSvc := services.NewAccountService(accountRepo, userRepo, hasher, emailSvc, cfg.Email.LoginURL, cfg.RequestTimeout, logger)
	authSvc := services.NewAuthService(userRepo, hasher, tokens, tokens, revocations, cfg.JWTExpiry, logger)
	actions := services.NewRowActionDispatcher(attendanceSvc, familySvc, accountSvc)

	if err := authSvc.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Registration: controllers.NewRegistrationController(logger, registrationSvc, qrcode.NewEncoder(qrcode.DefaultSize)),
		Attendance:   controllers.NewAttendanceController(logger, attendanceSvc, registrationSvc, actions, cfg.Location),
		Schedule:     controllers.NewScheduleController(logger, scheduleSvc),
		Family:       controllers.NewFamilyController(logger, familySvc, actions),
		Account:      controllers.NewAccountController(logger, accountSvc, actions),
		Auth:         controllers.NewAuthController(logger, authSvc),
		Health:       controllers.NewHealthController(logger, db),
	}, authSvc, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(mux, cfg.CORSAllowedOrigins, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStores returns Redis-backed draft and revocation stores when REDIS_ADDR is set, in-memory ones otherwise.
func newStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.DraftStore, domain.RevocationStore, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set; drafts and sign-outs are kept in memory")
		return store.NewMemoryDraftStore(cfg.DraftTTL), store.NewMemoryRevocationStore(), func() {}, nil
	}
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, nil, err
	}
	return store.NewRedisDraftStore(rdb, cfg.DraftTTL), store.NewRedisRevocationStore(rdb), func() { _ = rdb.Close() }, nil
}
