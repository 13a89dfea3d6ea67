package main

import (
	_ "Backend-Mergington-API/docs"
	"Backend-Mergington-API/src/routes"
	"Backend-Mergington-API/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// @title        Mergington High School API
// @version      1.0
// @description  API for viewing and signing up for extracurricular activities
// @BasePath     /
func main() {

	// โหลดค่า Environment Variables จากไฟล์ .env (ถ้ามี)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	// สร้าง registry จาก seed ถ้าข้อมูล seed ผิดให้หยุดทันที
	registry, err := seeder.NewSeededRegistry()
	if err != nil {
		log.Fatalf("❌ Invalid activity seed data: %v", err)
	}
	log.Printf("✅ Activity registry seeded with %d activities", registry.Count())

	// สร้าง app instance
	// UnescapePath เพราะชื่อกิจกรรมใน path มีเว้นวรรค เช่น /activities/Chess%20Club/signup
	app := fiber.New(fiber.Config{
		UnescapePath: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// ✅ เปิดใช้งาน CORS Middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// หน้าเว็บ signup แบบ static
	app.Static("/static", "./src/static")

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, registry)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}

}
