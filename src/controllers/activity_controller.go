package controllers

import (
	"errors"
	"net/url"
	"strings"

	"mergington-api/src/models"
	"mergington-api/src/services/activities"
	"mergington-api/src/utils"

	"github.com/gofiber/fiber/v2"
)

const emailRequiredDetail = "email query parameter is required"

// rosterErrors status ของ error แต่ละชนิด (detail คือข้อความของ error)
var rosterErrors = []struct {
	err    error
	status int
}{
	{activities.ErrActivityNotFound, fiber.StatusNotFound},
	{activities.ErrAlreadySignedUp, fiber.StatusBadRequest},
	{activities.ErrActivityFull, fiber.StatusBadRequest},
	{activities.ErrNotRegistered, fiber.StatusNotFound},
}

type ActivityController struct {
	service *activities.Service
}

func NewActivityController(service *activities.Service) *ActivityController {
	return &ActivityController{service: service}
}

// GetAllActivities godoc
// @Summary      ดึงกิจกรรมทั้งหมด
// @Description  คืนค่า object ที่ key เป็นชื่อกิจกรรม พร้อมรายชื่อผู้เข้าร่วมปัจจุบัน
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ctl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.JSON(ctl.service.ListActivities())
}

// SignupForActivity godoc
// @Summary      สมัครเข้ากิจกรรม
// @Description  เพิ่ม email (ตัดช่องว่างและแปลงเป็นตัวพิมพ์เล็ก) ต่อท้ายรายชื่อผู้เข้าร่วม
// @Tags         activities
// @Produce      json
// @Param        activity_name  path   string  true  "Activity name"
// @Param        email          query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activity_name}/signup [post]
func (ctl *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	name, email, ok := rosterParams(c)
	if !ok {
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, emailRequiredDetail)
	}

	normalized, err := ctl.service.SignUp(c.UserContext(), name, email)
	if err != nil {
		return handleRosterError(c, err)
	}

	return c.JSON(models.MessageResponse{
		Message: "Signed up " + normalized + " for " + name,
	})
}

// UnregisterFromActivity godoc
// @Summary      ยกเลิกการสมัครกิจกรรม
// @Description  ลบ email ออกจากรายชื่อผู้เข้าร่วม โดยลำดับของคนที่เหลือไม่เปลี่ยน
// @Tags         activities
// @Produce      json
// @Param        activity_name  path   string  true  "Activity name"
// @Param        email          query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activity_name}/unregister [delete]
func (ctl *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	name, email, ok := rosterParams(c)
	if !ok {
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, emailRequiredDetail)
	}

	normalized, err := ctl.service.Unregister(c.UserContext(), name, email)
	if err != nil {
		return handleRosterError(c, err)
	}

	return c.JSON(models.MessageResponse{
		Message: "Unregistered " + normalized + " from " + name,
	})
}

// rosterParams อ่านชื่อกิจกรรม (decode จาก path ตามตัวอักษร ไม่แปลงเป็น slug) และ email
func rosterParams(c *fiber.Ctx) (string, string, bool) {
	raw := c.Params("activity_name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		// ชื่อที่ decode ไม่ได้ไม่มีทางตรงกับ key ใน registry
		name = raw
	}

	email := c.Query("email")
	if strings.TrimSpace(email) == "" {
		return name, "", false
	}
	return name, email, true
}

func handleRosterError(c *fiber.Ctx, err error) error {
	for _, e := range rosterErrors {
		if errors.Is(err, e.err) {
			return utils.HandleError(c, e.status, e.err.Error())
		}
	}
	return err
}
