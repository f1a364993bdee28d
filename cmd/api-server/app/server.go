package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pquerna/ffjson/ffjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"readings-api-server/cmd/api-server/app/options"
	"readings-api-server/internal/api/reading"
	db "readings-api-server/internal/database"
)

type Server struct {
	app    *fiber.App
	db     *gorm.DB
	logger *zap.Logger
}

func NewServer(opts *options.Options, logger *zap.Logger) *Server {
	// connect readings database (sqlite or postgres)
	db, err := db.Connect()
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}

	return &Server{
		app:    NewApp(db, opts, logger),
		db:     db,
		logger: logger,
	}
}

// NewApp wires the middleware stack and every route onto the given database.
func NewApp(db *gorm.DB, opts *options.Options, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Readings API Server",
		Prefork:      false,
		JSONEncoder:  ffjson.Marshal,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	})

	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] [${ip}:${port}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	if *opts.Mode == "debug" {
		app.Use(pprof.New())
	}

	// reading
	readingLogger := logger.Named("reading")
	readingRepository := reading.NewReadingRepository(db)
	readingService := reading.NewReadingService(readingRepository, readingLogger)
	reading.ReadingRouter(app, readingService, opts.Timeout(), readingLogger)

	app.Get("/dashboard", monitor.New())

	app.Get("/swagger/*", swagger.Handler) // default

	app.All("*", func(c *fiber.Ctx) error {
		errorMessage := fmt.Sprintf("Route '%s' does not exist in this API!", c.OriginalURL())

		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{
			"status":  "fail",
			"message": errorMessage,
		})
	})

	return app
}

func (app *Server) Listen(port int, certFile, keyFile *string) error {
	app.logger.Info("Starting Readings api-server ...", zap.Int("port", port))

	address := fmt.Sprintf(":%d", port)
	if certFile != nil && keyFile != nil {
		if *certFile != "" && *keyFile != "" {
			return app.app.ListenTLS(address, *certFile, *keyFile)
		}
	}
	return app.app.Listen(address)
}

func (app *Server) Shutdown(parentCtx context.Context) error {
	g, ctx := errgroup.WithContext(parentCtx)
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	g.Go(func() error {
		if err := app.app.Shutdown(); err != nil {
			return err
		}
		// database 연결은 반드시 요청 처리가 다 끝나고 닫아야 함.
		return db.Close(app.db)
	})

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func Run(opts *options.Options, logger *zap.Logger) error {
	// Start api-server
	apiServerError := make(chan error, 1)

	server := NewServer(opts, logger)

	go func() {
		if err := server.Listen(*opts.Port, opts.CertFile, opts.KeyFile); err != nil && err != http.ErrServerClosed {
			logger.Error("Listen for api-server failed", zap.Error(err))
			apiServerError <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown server ...")

		ctx := context.Background()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("close api-server failed", zap.Error(err))
			return err
		}
	case err := <-apiServerError:
		return err
	}

	return nil
}
