package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/James-Dyer/cse108-lab08/app/policy"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

func SetupEnrollmentsRoutes(app *fiber.App) {
	api := app.Group("/api/enrollments")
	api.Use(auth.AuthMiddleware)

	// Student self-service
	api.Get("/", GetMyEnrollmentsAPI)
	api.Post("/", EnrollAPI)
	api.Delete("/:courseID", DropAPI)

	// Admin ledger management
	api.Get("/all", auth.RequireOperation(policy.OpManageEnrollments), GetAllEnrollmentsAPI)
	api.Post("/admin", auth.RequireOperation(policy.OpManageEnrollments), AdminEnrollAPI)
	api.Delete("/id/:id", auth.RequireOperation(policy.OpManageEnrollments), AdminDeleteEnrollmentAPI)
}
