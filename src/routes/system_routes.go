package routes

import (
	"net/http"

	"mergington-api/src/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
)

func systemRoutes(app *fiber.App, health *controllers.HealthController, metrics http.Handler) {
	app.Get("/healthz", health.GetHealth)
	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
}
