package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"productcatalog/cache"
	"productcatalog/clock"
	"productcatalog/config"
	"productcatalog/database"
	_ "productcatalog/docs" // Swagger 문서
	"productcatalog/handlers"
	"productcatalog/logger"
	"productcatalog/middleware"
	"productcatalog/scheduler"
	"productcatalog/services"
)

const (
	appTitle        = "Product Catalog"
	assetVersion    = "1"
	maxRequestBytes = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// @title Product Catalog API
// @version 1.0
// @description 제품 카탈로그 조회 및 가입 신청 서버

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	// 로거 초기화
	logConfig := logger.Config{
		Level:    cfg.LogLevel,
		LogDir:   cfg.LogDir,
		MaxSize:  10 * 1024 * 1024, // 10MB
		MaxAge:   7,                // 7일
		UseColor: cfg.LogColor,
	}
	if err := logger.Initialize(logConfig); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}

	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("Product Catalog Server Starting")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Initialize(ctx, cfg.DBDriver, cfg.DBDSN, cfg.SeedData); err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// 서비스 계층 초기화
	sqlExecutor := services.NewSQLExecutor(database.DB)
	if cfg.LogLevel == logger.DEBUG {
		sqlExecutor = services.NewTracingExecutor(sqlExecutor, logQuery)
	}
	store := newCacheStore(cfg)

	categoryService := services.NewCategoryService(sqlExecutor, store)
	listingService := services.NewProductListingService(
		categoryService,
		services.NewProductQueryEngine(sqlExecutor),
		store,
	)
	registrationService := services.NewRegistrationService(sqlExecutor)

	pages := handlers.NewPageRenderer(appTitle, assetVersion)
	flashes := handlers.NewFlashStore(cfg.AppKey, false)

	mux := newRouter(
		handlers.NewProductHandler(listingService, categoryService, pages, flashes),
		handlers.NewRegistrationHandler(registrationService, pages, flashes),
	)

	// 스케줄러 시작 (만료된 캐시 항목 정리)
	schedulerDone := scheduler.StartScheduler(ctx, store, cfg.CachePurgeInterval)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server listening on http://localhost%s", cfg.HTTPAddr)
		logger.Info("Registration form: http://localhost%s/registrations/create", cfg.HTTPAddr)
		logger.Info("Swagger UI: http://localhost%s/swagger/index.html", cfg.HTTPAddr)
		logger.Info("Database: %s, cache: %s", cfg.DBDriver, cfg.CacheDriver)
		logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Warn("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	<-schedulerDone
	logger.Info("Server stopped")
}

func newCacheStore(cfg config.Config) cache.Store {
	if cfg.CacheDriver == config.CacheDriverDatabase {
		return cache.NewSQLStore(database.DB, clock.NewRealClock())
	}
	return cache.NewMemoryStore()
}

func logQuery(ctx context.Context, query string, args []any) {
	requestID, _ := middleware.RequestIDFromContext(ctx)
	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"args":       len(args),
	}).Debug("SQL %s", strings.Join(strings.Fields(query), " "))
}

// newRouter 라우터 설정
func newRouter(products *handlers.ProductHandler, registrations *handlers.RegistrationHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// 정적 파일 서빙 (웹 프론트엔드)
	fs := http.FileServer(http.Dir("./web"))
	mux.Handle("/web/", http.StripPrefix("/web/", fs))

	// Swagger 문서
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/health", healthHandler)

	// 페이지 (HTML 또는 페이지 객체)
	mux.HandleFunc("/", page(homeHandler(products)))
	mux.HandleFunc("/products", page(products.Index))
	mux.HandleFunc("/registrations/create", page(registrations.Create))
	mux.HandleFunc("/registrations", page(registrations.Store))
	mux.HandleFunc("/validate-email", page(registrations.ValidateEmail))

	// JSON API
	mux.HandleFunc("/api/products", api(products.List))
	mux.HandleFunc("/api/validate-email", api(registrations.ValidateEmail))

	return mux
}

func page(h http.HandlerFunc) http.HandlerFunc {
	return middleware.ChainMiddleware(
		h,
		middleware.LoggingMiddleware,
		middleware.Recover,
		middleware.RequestSizeLimit(maxRequestBytes),
	)
}

func api(h http.HandlerFunc) http.HandlerFunc {
	return middleware.ChainMiddleware(
		h,
		middleware.LoggingMiddleware,
		middleware.Recover,
		middleware.CORSMiddleware,
		middleware.RequestSizeLimit(maxRequestBytes),
		middleware.SetJSONHeader,
	)
}

// homeHandler 루트 핸들러: 제품 목록 페이지
func homeHandler(products *handlers.ProductHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		products.Index(w, r)
	}
}

// healthHandler 헬스체크 핸들러
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"success","message":"Server is healthy"}`))
}
