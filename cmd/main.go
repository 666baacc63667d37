package main

import (
	"doctree-web-server/config"
	_ "doctree-web-server/docs"
	"doctree-web-server/internal/handler"
	"doctree-web-server/internal/repository"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Doctree-web-server
// @version 1.0
// @description REST API для работы с документами и иерархией папок

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	jwtRepo := repository.NewJWTRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.S3AndRedis)*time.Second)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}
	docService := service.NewDocumentService(docRepo, folderRepo, cacheRepo, s3Service, time.Duration(cfg.TTL.S3AndRedis)*time.Second)
	folderService := service.NewFolderService(folderRepo, docRepo)

	jwtService := security.NewJWTService(&cfg.JWT)
	userService := service.NewUserService(userRepo, jwtService, jwtRepo, &cfg.Admin)
	authService := service.NewAuthenticationService(jwtRepo, cfg, jwtService, userRepo)

	authHandler := handler.NewAuthenticationHandler(authService, jwtService, jwtRepo)
	docHandler := handler.NewDocumentHandler(docService, &cfg.TTL)
	folderHandler := handler.NewFolderHandler(folderService)
	userHandler := handler.NewUserHandler(userService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService, jwtRepo, cfg)
	setupUserRoutes(router, userHandler, jwtService, jwtRepo, cfg)
	setupFolderRoutes(router, folderHandler, jwtService, jwtRepo, cfg)
	setupDocumentRoutes(router, docHandler, jwtService, jwtRepo, cfg)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
			r.Get("/me", h.GetCurrentUsersUUID)
			r.Head("/me", h.GetCurrentUsersUUIDHead)
			r.Post("/refresh", h.RefreshToken)
		})
		r.Group(func(r chi.Router) {
			r.Post("/", h.Login)
			r.Delete("/{token}", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))

			r.Get("/users", h.ListUsers)
			r.Head("/users", h.ListUsersHead)

			r.Route("/users/{uuid}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Head("/", h.GetUserHead)
				r.Patch("/", h.UpdateUser)
				r.Patch("/password", h.UpdatePassword)
			})

			r.Delete("/users/{uuid}", h.DeleteUser)
		})
	})
}

func setupFolderRoutes(r chi.Router, h *handler.FolderHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api/folders", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
		r.Get("/", h.ListFolders)
		r.Post("/", h.CreateFolder)

		r.Route("/{folder_uuid}", func(r chi.Router) {
			r.Get("/", h.GetFolder)
			r.Get("/children", h.GetChildFolders)
			r.Get("/path", h.GetFolderPath)
			r.Patch("/rename", h.RenameFolder)
			r.Patch("/move", h.MoveFolder)
			r.Delete("/", h.DeleteFolder)
		})
	})
}

func setupDocumentRoutes(r chi.Router, h *handler.DocumentHandler, jwtService *security.JWTService, jwtRepo *repository.JWTRepository, cfg *config.AppConfig) {
	r.Route("/api/docs", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtRepo, jwtService, cfg.Admin.AdminToken))
		r.Get("/", h.ListDocuments)
		r.Head("/", h.ListDocumentsHead)
		r.Post("/", h.CreateDocument)

		r.Route("/{doc_uuid}", func(r chi.Router) {
			r.Get("/", h.GetDocument)
			r.Head("/", h.GetDocumentHead)
			r.Patch("/move", h.MoveDocument)
			r.Delete("/", h.DeleteDocument)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
