package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	_ "github.com/job000/wedding2025-backend/docs"
	"github.com/job000/wedding2025-backend/internal/config"
	"github.com/job000/wedding2025-backend/internal/handler"
	"github.com/job000/wedding2025-backend/internal/logger"
	"github.com/job000/wedding2025-backend/internal/service"
	"github.com/job000/wedding2025-backend/internal/storage/local"
	"github.com/job000/wedding2025-backend/internal/storage/memory"
	"github.com/job000/wedding2025-backend/internal/storage/postgres"
	s3store "github.com/job000/wedding2025-backend/internal/storage/s3"
)

type repository interface {
	service.UserStore
	service.MediaStore
	service.CommentStore
	service.AlbumStore
	service.RSVPStore
	service.InfoStore
	service.FAQStore
}

// @title Wedding2025 API
// @version 1.0
// @description Gallery, RSVP and information API for the wedding site
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "optional config file")
	flag.Parse()

	// Local overrides; absent in containers.
	if err := godotenv.Load(".env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env.local: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logr, err := logger.New(cfg.Development())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatalw("server stopped", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, zlog *zap.SugaredLogger) (repository, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		zlog.Warnw("using in-memory database; data is lost on restart")
		return memory.New(), func() {}, nil
	case "postgres", "":
		db, err := postgres.InitDB(ctx, postgres.Config{
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			User:           cfg.Database.User,
			Password:       cfg.Database.Password,
			Name:           cfg.Database.Name,
			SSLMode:        cfg.Database.SSLMode,
			MaxConns:       cfg.Database.MaxConns,
			ConnectTimeout: cfg.ConnectTimeout,
		}, zlog)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}

// openBlobs returns the blob store and, for local storage, the directory to serve.
func openBlobs(ctx context.Context, cfg *config.Config) (service.BlobStore, http.FileSystem, error) {
	switch cfg.Storage.Driver {
	case "s3":
		blobs, err := s3store.NewS3Storage(ctx, s3store.S3Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Endpoint:        cfg.S3.Endpoint,
		})
		return blobs, nil, err
	case "local", "":
		blobs, err := local.New(afero.NewOsFs(), cfg.Storage.UploadDir, cfg.App.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return blobs, blobs.FileSystem(), nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func run(cfg *config.Config, zlog *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer closeStore()

	blobs, uploads, err := openBlobs(ctx, cfg)
	if err != nil {
		return fmt.Errorf("file storage: %w", err)
	}

	tokens := service.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL)
	users := service.NewUserService(store, store, blobs, tokens, zlog)
	if err := users.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	h := handler.NewHandler(handler.Services{
		Users:    users,
		Media:    service.NewMediaService(store, store, blobs, zlog),
		Comments: service.NewCommentService(store, store),
		Albums:   service.NewAlbumService(store, store),
		RSVP:     service.NewRSVPService(store),
		Info:     service.NewInfoService(store),
		FAQ:      service.NewFAQService(store),
	}, zlog, cfg.MaxUploadBytes())

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(h, handler.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		Uploads:      uploads,
		Swagger:      true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}
	errCh := make(chan error, 1)
	go func() {
		zlog.Infow("listening", "addr", srv.Addr, "env", cfg.App.Env)
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

	zlog.Infow("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
