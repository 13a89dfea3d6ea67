package routes

import (
	"Backend-Mergington-API/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App, controller *controllers.ActivityController) {
	activityGroup := app.Group("/activities")
	activityGroup.Get("/", controller.GetAllActivities)                      // ดึงกิจกรรมทั้งหมด
	activityGroup.Post("/:name/signup", controller.SignupForActivity)        // ลงทะเบียนกิจกรรม
	activityGroup.Delete("/:name/signup", controller.UnregisterFromActivity) // ยกเลิกการลงทะเบียน
}
