package main

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/domain/fiber/handler"
	"github.com/fadilmartias/practice-evaluator/internal/middleware"
	"github.com/fadilmartias/practice-evaluator/internal/observability"
	"github.com/fadilmartias/practice-evaluator/internal/service"
	"github.com/fadilmartias/practice-evaluator/internal/usecase"
	"github.com/fadilmartias/practice-evaluator/internal/util"
)

func main() {
	// Load .env file
	ctx := context.Background()
	envErr := godotenv.Load()

	appConfig := config.LoadAppConfig()
	log := util.NewLogger(appConfig)
	if envErr != nil {
		log.Debug().Msg("Could not load .env file")
	}

	evaluator, err := service.NewEvaluator(ctx, service.EvaluatorOptions{
		Provider:   config.LoadEvaluatorConfig().Provider,
		Gemini:     *config.LoadGeminiConfig(),
		OpenRouter: *config.LoadOpenRouterConfig(),
		OpenAI:     *config.LoadOpenAIConfig(),
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not build evaluator")
	}

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(ctx, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			})
		},
	})
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Get("/metrics", observability.MetricsHandler())

	uc := usecase.NewPracticeUsecase(evaluator, log)
	practiceHandler := handler.NewPracticeHandler(uc, util.NewValidator(), log)
	practiceHandler.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("active goroutines")
		}
	}()

	log.Info().Str("port", appConfig.Port).Str("provider", config.LoadEvaluatorConfig().Provider).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
