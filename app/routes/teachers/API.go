package teachers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/James-Dyer/cse108-lab08/app/config"
	"github.com/James-Dyer/cse108-lab08/app/database"
	"github.com/James-Dyer/cse108-lab08/app/models"
	"github.com/James-Dyer/cse108-lab08/app/policy"
	"github.com/James-Dyer/cse108-lab08/app/routes/auth"
)

// GetMyCoursesAPI lists the caller's assigned courses with enrollment
// counts.
func GetMyCoursesAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpListOwnTeaching); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	courses, err := database.GetCoursesForTeacher(config.GetDB(), auth.CallerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func GetAssignmentsAPI(c *fiber.Ctx) error {
	assignments, err := database.GetAllAssignments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}
	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type AssignmentRequest struct {
		TeacherID string `json:"teacher_id"`
		CourseID  string `json:"course_id"`
	}
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if _, err := uuid.Parse(req.TeacherID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
	}
	if _, err := uuid.Parse(req.CourseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	assignment, err := database.CreateAssignment(config.GetDB(), req.TeacherID, req.CourseID)
	switch {
	case errors.Is(err, models.ErrDuplicateAssignment):
		return c.Status(409).JSON(fiber.Map{"error": models.ErrDuplicateAssignment.Error()})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Teacher or course not found"})
	case err != nil:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"assignment": assignment})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	assignmentID := c.Params("id")
	if _, err := uuid.Parse(assignmentID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment id"})
	}

	err := database.DeleteAssignment(config.GetDB(), assignmentID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
	}
	return c.JSON(fiber.Map{"message": "Assignment deleted"})
}
