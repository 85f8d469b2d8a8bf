package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/James-Dyer/cse108-lab08/app/policy"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

func SetupCoursesRoutes(app *fiber.App) {
	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCoursesAPI)                 // Browse the catalog
	api.Get("/:id", GetCourseAPI)               // Get single course
	api.Get("/:id/status", GetCourseStatusAPI)  // Seat summary for dashboards

	// Admin catalog management
	api.Post("/", auth.RequireOperation(policy.OpManageCourses), CreateCourseAPI)
	api.Put("/:id", auth.RequireOperation(policy.OpManageCourses), UpdateCourseAPI)
	api.Delete("/:id", auth.RequireOperation(policy.OpManageCourses), DeleteCourseAPI)
}
