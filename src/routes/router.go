package routes

import (
	"net/http"

	"mergington-api/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers controller ทั้งหมดที่ถูกสร้างไว้ใน main
type Handlers struct {
	Activities *controllers.ActivityController
	Health     *controllers.HealthController
	Metrics    http.Handler // nil = ไม่เปิด /metrics
	StaticDir  string       // ว่าง = ไม่เสิร์ฟหน้าเว็บ
}

func InitRoutes(app *fiber.App, h Handlers) {
	// หน้าแรก redirect ไปหน้าเว็บ static
	app.Get("/", controllers.RedirectToLanding)
	if h.StaticDir != "" {
		app.Static("/static", h.StaticDir)
	}

	activityRoutes(app, h.Activities)
	systemRoutes(app, h.Health, h.Metrics)
}
