package controllers

import (
	"errors"

	"Backend-Mergington-API/src/models"
	"Backend-Mergington-API/src/services/activities"
	"Backend-Mergington-API/src/store"
	"Backend-Mergington-API/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ActivityController รวม handler ของ Activity API
// รับ service ผ่าน constructor เพื่อให้ test สร้าง registry สดของตัวเองได้
type ActivityController struct {
	service *activities.Service
}

// NewActivityController สร้าง ActivityController พร้อม service
func NewActivityController(service *activities.Service) *ActivityController {
	return &ActivityController{service: service}
}

// GetAllActivities godoc
// @Summary      Get all activities
// @Description  ดึงกิจกรรมทั้งหมดพร้อมรายชื่อผู้ลงทะเบียนของแต่ละกิจกรรม
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ctl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ctl.service.GetAllActivities())
}

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Description  นักเรียนลงทะเบียนเข้ากิจกรรมด้วย email
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [post]
func (ctl *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	activityName := c.Params("name")
	email := c.Query("email")
	if email == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email is required")
	}

	message, err := ctl.service.SignupStudent(activityName, email)
	if err != nil {
		status, detail := statusForError(err)
		return utils.HandleError(c, status, detail)
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{Message: message})
}

// UnregisterFromActivity godoc
// @Summary      Unregister from an activity
// @Description  ยกเลิกการลงทะเบียนกิจกรรมของนักเรียนด้วย email
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [delete]
func (ctl *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	activityName := c.Params("name")
	email := c.Query("email")
	if email == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email is required")
	}

	message, err := ctl.service.UnregisterStudent(activityName, email)
	if err != nil {
		status, detail := statusForError(err)
		return utils.HandleError(c, status, detail)
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{Message: message})
}

// statusForError แปลง error ของ registry เป็น HTTP status + ข้อความฝั่ง client
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		return fiber.StatusNotFound, "Activity not found"
	case errors.Is(err, store.ErrAlreadySignedUp):
		return fiber.StatusBadRequest, "Student already signed up for this activity"
	case errors.Is(err, store.ErrNotSignedUp):
		return fiber.StatusNotFound, "Student not signed up for this activity"
	}
	return fiber.StatusInternalServerError, "Unexpected error"
}
