package routes

import (
	"mergington-api/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
// ชื่อกิจกรรมใน path ใช้ตามตัวอักษร (เช่น Basketball%20Club)
func activityRoutes(app *fiber.App, ctl *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", ctl.GetAllActivities)                                   // ดึงกิจกรรมทั้งหมด
	activityRoutes.Post("/:activity_name/signup", ctl.SignupForActivity)            // สมัครเข้ากิจกรรม
	activityRoutes.Delete("/:activity_name/unregister", ctl.UnregisterFromActivity) // ยกเลิกการสมัคร
}
