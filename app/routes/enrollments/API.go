package enrollments

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

// GetMyEnrollmentsAPI lists the caller's courses with their grades.
func GetMyEnrollmentsAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpListOwnCourses); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	enrollments, err := database.GetEnrollmentsForStudent(config.GetDB(), auth.CallerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

// EnrollAPI enrolls the caller in a course. Students act on their own
// student id only; the id comes from the authenticated context, never the
// request body.
func EnrollAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpEnroll); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	type EnrollRequest struct {
		CourseID string `json:"course_id"`
	}
	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if _, err := uuid.Parse(req.CourseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	enrollment, err := database.Enroll(config.GetDB(), auth.CallerID(c), req.CourseID)
	if err != nil {
		return enrollError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"enrollment": enrollment})
}

// DropAPI removes the caller's enrollment in a course; the grade cascades
// away with it. Dropping twice yields 404.
func DropAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpDrop); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	courseID := c.Params("courseID")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	err := database.Drop(config.GetDB(), auth.CallerID(c), courseID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to drop course"})
	}
	return c.JSON(fiber.Map{"message": "Course dropped"})
}

func GetAllEnrollmentsAPI(c *fiber.Ctx) error {
	enrollments, err := database.GetAllEnrollments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

// AdminEnrollAPI enrolls any student; the same capacity and uniqueness
// invariants apply.
func AdminEnrollAPI(c *fiber.Ctx) error {
	type AdminEnrollRequest struct {
		StudentID string `json:"student_id"`
		CourseID  string `json:"course_id"`
	}
	var req AdminEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if _, err := uuid.Parse(req.StudentID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}
	if _, err := uuid.Parse(req.CourseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	enrollment, err := database.Enroll(config.GetDB(), req.StudentID, req.CourseID)
	if err != nil {
		return enrollError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"enrollment": enrollment})
}

func AdminDeleteEnrollmentAPI(c *fiber.Ctx) error {
	enrollmentID := c.Params("id")
	if _, err := uuid.Parse(enrollmentID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid enrollment id"})
	}

	err := database.DeleteEnrollmentByID(config.GetDB(), enrollmentID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}
	return c.JSON(fiber.Map{"message": "Enrollment deleted"})
}

// enrollError maps enrollment ledger failures to their status codes.
func enrollError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrAlreadyEnrolled):
		return c.Status(409).JSON(fiber.Map{"error": models.ErrAlreadyEnrolled.Error()})
	case errors.Is(err, models.ErrCourseFull):
		return c.Status(409).JSON(fiber.Map{"error": models.ErrCourseFull.Error()})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to enroll"})
	}
}
