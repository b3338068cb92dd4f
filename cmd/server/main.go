package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
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
	"github.com/prepdeck/interview-api/internal/config"
	"github.com/prepdeck/interview-api/internal/domain/fiber/handler"
	"github.com/prepdeck/interview-api/internal/middleware"
	"github.com/prepdeck/interview-api/internal/model"
	"github.com/prepdeck/interview-api/internal/repository"
	"github.com/prepdeck/interview-api/internal/service"
	"github.com/prepdeck/interview-api/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	generator, chatModel, evalModel := buildGenerator(ctx)
	tokens := service.NewTokenService()

	interviewUC := usecase.NewInterviewUsecase(generator, chatModel, evalModel)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)

	auth := middleware.Auth(tokens)
	handler.NewAIHandler(interviewUC).RegisterRoutes(app, auth)
	handler.NewAuthHandler(authUC).RegisterRoutes(app, auth)
	handler.NewQuestionHandler(questionRepo).RegisterRoutes(app, auth)
	handler.NewSessionHandler(sessionRepo).RegisterRoutes(app, auth)
	handler.NewStatsHandler(statsRepo).RegisterRoutes(app, auth)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// buildGenerator picks the generative backend from AI_PROVIDER and returns
// it with the model names to use for the chat and evaluation flows.
func buildGenerator(ctx context.Context) (service.TextGenerator, string, string) {
	switch os.Getenv("AI_PROVIDER") {
	case "openrouter":
		openRouterConfig := config.LoadOpenRouterConfig()
		return service.NewOpenRouterService(), openRouterConfig.Model, openRouterConfig.Model
	default:
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		geminiConfig := config.LoadGeminiConfig()
		return gemini, geminiConfig.ChatModel, geminiConfig.EvalModel
	}
}

func allowedOrigins() string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return origins
	}
	return "*"
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.User{}, &model.Question{}, &model.InterviewSession{}, &model.UserStat{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
