package grades

import (
	"github.com/gofiber/fiber/v2"

	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	api.Get("/course/:courseID", GetCourseRosterAPI) // Roster with grades
	api.Get("/:enrollmentID", GetGradeAPI)           // Single grade lookup
	api.Put("/:enrollmentID", SetGradeAPI)           // Upsert one grade
}
