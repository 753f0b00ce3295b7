package server

import (
	"errors"

	_ "mergington-api/docs"
	"mergington-api/src/controllers"
	"mergington-api/src/metrics"
	"mergington-api/src/middleware"
	"mergington-api/src/routes"
	"mergington-api/src/services/activities"
	"mergington-api/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	futils "github.com/gofiber/fiber/v2/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const AppName = "Mergington High School API"

// Options ส่วนประกอบที่ต้องใช้สร้าง app
type Options struct {
	Logger         *zap.Logger
	Activities     *activities.Service
	Metrics        *metrics.Metrics // optional
	Redis          *redis.Client    // optional
	AllowedOrigins string
	StaticDir      string
}

// New สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: AppName,
		// ค่าจาก path/query ถูกเก็บลง registry จึงต้องไม่อ้างถึง buffer ของ fasthttp
		Immutable:     true,
		CaseSensitive: true,
		ErrorHandler:  errorHandler(opts.Logger),
	})

	allowOrigins := opts.AllowedOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(opts.Logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	handlers := routes.Handlers{
		Activities: controllers.NewActivityController(opts.Activities),
		Health:     controllers.NewHealthController(opts.Activities, opts.Redis),
		StaticDir:  opts.StaticDir,
	}
	if opts.Metrics != nil {
		handlers.Metrics = opts.Metrics.Handler()
	}
	routes.InitRoutes(app, handlers)

	return app
}

// errorHandler ตอบ error ทุกชนิดในรูปแบบ {"detail": "..."}
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.HandleError(c, fe.Code, futils.StatusMessage(fe.Code))
		}

		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.HandleError(c, fiber.StatusInternalServerError, futils.StatusMessage(fiber.StatusInternalServerError))
	}
}
