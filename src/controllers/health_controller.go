package controllers

import (
	"mergington-api/src/models"
	"mergington-api/src/services/activities"
	"mergington-api/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// LandingPage path ของหน้าเว็บ static
const LandingPage = "/static/index.html"

type HealthController struct {
	service *activities.Service
	redis   *redis.Client
}

// NewHealthController redis เป็น nil ได้ (ไม่ได้เปิดใช้ Redis)
func NewHealthController(service *activities.Service, rdb *redis.Client) *HealthController {
	return &HealthController{service: service, redis: rdb}
}

// GetHealth godoc
// @Summary      ตรวจสอบสถานะ service
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /healthz [get]
func (ctl *HealthController) GetHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:     "ok",
		Activities: ctl.service.Count(),
		Redis:      utils.RedisStatus(c.UserContext(), ctl.redis),
	})
}

// RedirectToLanding godoc
// @Summary      Redirect ไปหน้าเว็บหลัก
// @Tags         system
// @Success      307
// @Router       / [get]
func RedirectToLanding(c *fiber.Ctx) error {
	return c.Redirect(LandingPage, fiber.StatusTemporaryRedirect)
}
