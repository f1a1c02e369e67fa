package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/safety-hub/docs"
	"github.com/sbilibin2017/safety-hub/internal/facades"
	"github.com/sbilibin2017/safety-hub/internal/handlers"
	"github.com/sbilibin2017/safety-hub/internal/jwt"
	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/middlewares"
	"github.com/sbilibin2017/safety-hub/internal/migrations"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/sbilibin2017/safety-hub/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const notificationGroupID = "safety-hub-mailer"

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

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

	JWTSecretKey string
	JWTExpSecond int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	SMSCountryCode    string

	GoogleClientID string
	GeminiAPIKey   string
	GeminiModel    string

	UploadDir        string
	ResetPasswordURL string
}

// @title safety-hub API
// @version 1.0.0
// @description Community safety backend: OTP identity, SOS alerts, posts, skill exchange and equality ratings
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application config.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.ResetPasswordURL = getEnv("RESET_PASSWORD_URL", "http://localhost:3000/reset-password")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config, empty means notifications are sent synchronously
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// SMTP config
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "")
	if cfg.SMTPPort, err = getInt("SMTP_PORT", "587"); err != nil {
		return
	}

	// Twilio config
	cfg.TwilioAccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	cfg.TwilioAuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	cfg.TwilioPhoneNumber = getEnv("TWILIO_PHONE_NUMBER", "")
	cfg.SMSCountryCode = getEnv("SMS_COUNTRY_CODE", "+91")

	// Google config
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", "")
	cfg.GeminiModel = getEnv("GEMINI_MODEL", "gemini-1.5-flash")

	return
}

// run initializes the logger, database, Redis, Kafka, external facades and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	logger.Log = log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
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
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// External facades
	mailer := newMailer(cfg, log)
	sms := newSMSSender(cfg, log)
	assistant := newAssistant(ctx, cfg, log)
	if c, ok := assistant.(io.Closer); ok {
		defer c.Close()
	}
	google, err := facades.NewGoogleVerifier(ctx, cfg.GoogleClientID)
	if err != nil {
		return err
	}

	var (
		notifier services.Notifier
		events   services.EventPublisher
		worker   *workers.NotificationWorker
	)
	if len(cfg.KafkaBrokers) > 0 {
		notificationWriter := facades.NewKafkaWriter(cfg.KafkaBrokers, facades.TopicNotifications)
		defer notificationWriter.Close()
		eventWriter := facades.NewKafkaWriter(cfg.KafkaBrokers, facades.TopicEvents)
		defer eventWriter.Close()

		notifier = facades.NewKafkaNotifier(notificationWriter)
		events = facades.NewKafkaEventPublisher(eventWriter)

		reader := workers.NewKafkaReader(cfg.KafkaBrokers, notificationGroupID, facades.TopicNotifications)
		defer reader.Close()
		worker = workers.NewNotificationWorker(reader, mailer)
		log.Infof("Kafka enabled, brokers %v", cfg.KafkaBrokers)
	} else {
		notifier = facades.NewDirectNotifier(mailer)
		log.Warn("KAFKA_BROKERS not set, emails are sent synchronously and events are not published")
	}

	// Initialize JWT service
	jwt := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	contactRepo := repositories.NewContactRepository(db)
	sosRepo := repositories.NewSOSRepository(db)
	postRepo := repositories.NewPostRepository(db, txGetter)
	chatRepo := repositories.NewChatRepository(db)
	skillRepo := repositories.NewSkillRepository(db, txGetter)
	matchRepo := repositories.NewMatchRepository(db, txGetter)
	badgeRepo := repositories.NewBadgeRepository(db, txGetter)
	skillRatingRepo := repositories.NewSkillRatingRepository(db, txGetter)
	companyRatingRepo := repositories.NewCompanyRatingRepository(db)
	equalityStatsRepo := repositories.NewEqualityStatsRepository(db)
	schemeRepo := repositories.NewSchemeRepository(db)
	companyCacheRepo := repositories.NewCompanySummaryCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	resetTokenRepo := repositories.NewResetTokenRepository(rdb)
	uploadRepo, err := repositories.NewUploadRepository(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt, notifier, google, resetTokenRepo,
		services.WithResetURL(cfg.ResetPasswordURL))
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	contactService := services.NewContactService(contactRepo)
	sosService := services.NewSOSService(userReadRepo, sosRepo, contactRepo, sms, events)
	postService := services.NewPostService(postRepo, uploadRepo)
	chatbotService := services.NewChatbotService(chatRepo, assistant)
	skillService := services.NewSkillService(skillRepo, badgeRepo, skillRatingRepo, matchRepo)
	matchService := services.NewMatchService(matchRepo, skillRepo, userReadRepo, badgeRepo, notifier, events)
	equalityService := services.NewEqualityService(companyRatingRepo, companyCacheRepo, equalityStatsRepo)
	schemeService := services.NewSchemeService(schemeRepo)

	// Setup router
	authMiddleware := middlewares.AuthMiddleware(jwt)
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/health", handlers.NewHealthHandler(map[string]handlers.Pinger{
		"postgres": handlers.PingFunc(db.PingContext),
		"redis":    handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
	}))
	r.Get("/uploads/{filename}", handlers.NewUploadHandler(uploadRepo))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/verify-otp", handlers.NewVerifyOTPHandler(authService))
		r.Post("/resend-otp", handlers.NewResendOTPHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/send-aadhaar-otp", handlers.NewSendIdentifierOTPHandler(authService, services.IdentifierAadhaar))
		r.Post("/login-aadhaar", handlers.NewSendIdentifierOTPHandler(authService, services.IdentifierAadhaar))
		r.Post("/verify-aadhaar-otp", handlers.NewVerifyIdentifierOTPHandler(authService, services.IdentifierAadhaar))
		r.Post("/send-pan-otp", handlers.NewSendIdentifierOTPHandler(authService, services.IdentifierPAN))
		r.Post("/login-pan", handlers.NewSendIdentifierOTPHandler(authService, services.IdentifierPAN))
		r.Post("/verify-pan-otp", handlers.NewVerifyIdentifierOTPHandler(authService, services.IdentifierPAN))
		r.Post("/verify-login-otp", handlers.NewVerifyIdentifierOTPHandler(authService, services.IdentifierAny))
		r.Post("/google-login", handlers.NewGoogleLoginHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
		r.Post("/reset-password/{token}", handlers.NewResetPasswordHandler(authService))
	})

	// SOS routes are public so an alert can be raised without a session
	r.Route("/api/sos", func(r chi.Router) {
		r.Post("/start", handlers.NewSOSStartHandler(sosService))
		r.Post("/update", handlers.NewSOSUpdateHandler(sosService))
		r.Post("/stop", handlers.NewSOSStopHandler(sosService))
		r.Get("/active/{user_id}", handlers.NewSOSActiveHandler(sosService, false))
		r.Get("/live/{user_id}", handlers.NewSOSActiveHandler(sosService, true))
	})

	r.Get("/api/emergency/nearby", handlers.NewNearbyHandler(sosService))
	r.Get("/api/schemes", handlers.NewSchemesHandler(schemeService))

	r.Route("/api/equality", func(r chi.Router) {
		r.Get("/companies", handlers.NewCompaniesHandler(equalityService))
		r.Get("/dashboard", handlers.NewDashboardHandler(equalityService))
		r.Get("/paygap", handlers.NewPayGapsHandler(equalityService))
		r.Get("/leadership", handlers.NewLeadershipHandler(equalityService))
		r.Get("/fields", handlers.NewFieldRatiosHandler(equalityService))
		r.Get("/feedback", handlers.NewFeedbackHandler(equalityService))
		r.Post("/feedback", handlers.NewAddFeedbackHandler(equalityService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/companies", handlers.NewAddCompanyHandler(equalityService))
			r.Post("/rate", handlers.NewRateCompanyHandler(equalityService))
			r.Post("/paygap", handlers.NewAddPayGapHandler(equalityService))
			r.Post("/leadership", handlers.NewAddLeadershipHandler(equalityService))
			r.Post("/fields", handlers.NewAddFieldRatioHandler(equalityService))
		})
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/api/user/profile", handlers.NewGetProfileHandler(profileService))
		r.Put("/api/user/profile", handlers.NewUpdateProfileHandler(profileService))
		r.Put("/api/profile/{id}", handlers.NewUpdateProfileHandler(profileService))
		r.Patch("/api/profile/settings", handlers.NewUpdateSettingsHandler(profileService))
		r.Put("/api/profile/emergency-contact", handlers.NewSetPrimaryContactHandler(contactService))

		r.Get("/api/emergency/contacts/{user_id}", handlers.NewListContactsHandler(contactService))
		r.Post("/api/emergency/contacts", handlers.NewAddContactHandler(contactService))
		r.Delete("/api/emergency/contacts/{id}", handlers.NewDeleteContactHandler(contactService))
		r.Post("/api/emergency/alert", handlers.NewEmergencyAlertHandler(sosService))

		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", handlers.NewFeedHandler(postService))
			r.Post("/", handlers.NewCreatePostHandler(postService))
			r.Get("/{id}", handlers.NewGetPostHandler(postService))
			r.Delete("/{id}", handlers.NewDeletePostHandler(postService))
			r.Get("/{id}/comments", handlers.NewListCommentsHandler(postService))
			r.With(txMiddleware).Post("/{id}/comments", handlers.NewAddCommentHandler(postService))
			r.With(txMiddleware).Post("/{id}/like", handlers.NewToggleLikeHandler(postService))
		})

		r.Route("/api/chatbot", func(r chi.Router) {
			r.Post("/query", handlers.NewChatQueryHandler(chatbotService))
			r.Get("/history", handlers.NewChatHistoryHandler(chatbotService))
		})

		r.Route("/api/skills", func(r chi.Router) {
			r.Get("/categories", handlers.NewSkillCategoriesHandler(skillService))
			r.Get("/search", handlers.NewSkillSearchHandler(skillService))
			r.Get("/user-skills", handlers.NewListUserSkillsHandler(skillService))
			r.Post("/user-skills", handlers.NewSaveUserSkillHandler(skillService))
			r.Delete("/user-skills/{id}", handlers.NewRemoveUserSkillHandler(skillService))
			r.Get("/browse", handlers.NewBrowseSkillsHandler(skillService))
			r.Get("/badges", handlers.NewBadgesHandler(skillService))
			r.Get("/stats", handlers.NewSkillStatsHandler(skillService))
			r.With(txMiddleware).Post("/rate", handlers.NewRateSkillHandler(skillService))

			r.Post("/request-match", handlers.NewRequestMatchHandler(matchService))
			r.Get("/match-requests", handlers.NewListMatchesHandler(matchService))
			r.With(txMiddleware).Post("/match-requests/{id}/respond", handlers.NewRespondMatchHandler(matchService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var wg sync.WaitGroup
	if worker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("Notification worker started")
			if err := worker.Run(ctxShutdown); err != nil {
				log.Errorw("notification worker stopped", "error", err)
			}
		}()
	}

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		stop()
		wg.Wait()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	wg.Wait()

	log.Info("HTTP server stopped gracefully")
	return nil
}

func newMailer(cfg config, log *zap.SugaredLogger) facades.Mailer {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" {
		log.Warn("SMTP not configured, emails are only logged")
		return facades.LogMailer{}
	}
	return facades.NewSMTPMailer(facades.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
}

func newSMSSender(cfg config, log *zap.SugaredLogger) services.SMSSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioPhoneNumber == "" {
		log.Warn("Twilio not configured, SOS text messages will fail")
		return facades.UnconfiguredSMS{}
	}
	return facades.NewTwilioSMS(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.SMSCountryCode)
}

func newAssistant(ctx context.Context, cfg config, log *zap.SugaredLogger) services.Assistant {
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, chatbot answers with the fallback reply")
		return facades.UnavailableAssistant{}
	}
	a, err := facades.NewGeminiAssistant(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Errorw("failed to create gemini client, chatbot answers with the fallback reply", "error", err)
		return facades.UnavailableAssistant{}
	}
	return a
}
