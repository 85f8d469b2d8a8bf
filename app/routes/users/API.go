package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/James-Dyer/cse108-lab08/app/config"
	"github.com/James-Dyer/cse108-lab08/app/database"
	"github.com/James-Dyer/cse108-lab08/app/models"
)

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// CreateUserAPI provisions an account. The role is immutable afterwards.
func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := database.CreateUser(config.GetDB(), req.Username, req.Password, role)
	if errors.Is(err, models.ErrDuplicateName) {
		return c.Status(409).JSON(fiber.Map{"error": models.ErrDuplicateName.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}
	return c.Status(201).JSON(fiber.Map{"user": user})
}

func GetUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if _, err := uuid.Parse(userID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := database.GetUserByID(config.GetDB(), userID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUserAPI removes an account; enrollments, grades and teaching
// assignments owned by it cascade away.
func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if _, err := uuid.Parse(userID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	err := database.DeleteUser(config.GetDB(), userID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
