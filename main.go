package main

import (
	"log"
	"time"

	"dimensions/config"
	"dimensions/database"
	authRoutes "dimensions/routers/authRoutes"
	competencyRoutes "dimensions/routers/competencyRoutes"
	planRoutes "dimensions/routers/planRoutes"
	progressRoutes "dimensions/routers/progressRoutes"
	settingsRoutes "dimensions/routers/settingsRoutes"
	templateRoutes "dimensions/routers/templateRoutes"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitTemplateCourseCache(database.Database.Db, time.Duration(config.AppConfig.TemplateCacheTTL)*time.Minute)
	utils.StartCacheScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded display images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	competencyRoutes.SetupCompetencyRoutes(app)
	templateRoutes.SetupTemplateRoutes(app)
	planRoutes.SetupPlanRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
