package routes

import (
	"Backend-Mergington-API/src/controllers"
	"Backend-Mergington-API/src/services/activities"
	"Backend-Mergington-API/src/store"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes ประกอบ service + controller จาก registry แล้วผูกทุกเส้นทาง
func InitRoutes(app *fiber.App, registry *store.ActivityRegistry) {
	activityService := activities.NewService(registry)
	activityController := controllers.NewActivityController(activityService)

	activityRoutes(app, activityController)

	// หน้าแรก redirect ไปหน้า signup
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
