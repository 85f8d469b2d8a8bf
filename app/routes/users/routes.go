package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/James-Dyer/cse108-lab08/app/policy"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireOperation(policy.OpManageUsers))

	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Get("/:id", GetUserAPI)
	api.Delete("/:id", DeleteUserAPI)
}
