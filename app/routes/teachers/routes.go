package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/James-Dyer/cse108-lab08/app/policy"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Get("/courses", GetMyCoursesAPI) // Teacher's own assigned courses

	// Admin assignment management
	api.Get("/assignments", auth.RequireOperation(policy.OpManageAssignments), GetAssignmentsAPI)
	api.Post("/assignments", auth.RequireOperation(policy.OpManageAssignments), CreateAssignmentAPI)
	api.Delete("/assignments/:id", auth.RequireOperation(policy.OpManageAssignments), DeleteAssignmentAPI)
}
