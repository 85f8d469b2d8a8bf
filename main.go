package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/James-Dyer/cse108-lab08/app/config"
	"github.com/James-Dyer/cse108-lab08/app/database"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
	"github.com/James-Dyer/cse108-lab08/app/routes/courses"
	"github.com/James-Dyer/cse108-lab08/app/routes/enrollments"
	"github.com/James-Dyer/cse108-lab08/app/routes/grades"
	"github.com/James-Dyer/cse108-lab08/app/routes/teachers"
	"github.com/James-Dyer/cse108-lab08/app/routes/users"
)

// customErrorHandler turns unrouted fiber errors into the JSON envelope the
// rest of the API uses.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "enrollment-manager", "status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	users.SetupUsersRoutes(app)
	courses.SetupCoursesRoutes(app)
	enrollments.SetupEnrollmentsRoutes(app)
	grades.SetupGradesRoutes(app)
	teachers.SetupTeachersRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Server listening on :%s", port)
	log.Fatal(app.Listen(":" + port))
}
