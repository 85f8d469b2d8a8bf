package grades

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

// GetCourseRosterAPI returns the enrollments and grades for one course.
// Teachers may only view rosters for courses they are currently assigned
// to; the assignment is checked against the store on every call.
func GetCourseRosterAPI(c *fiber.Ctx) error {
	role := auth.CallerRole(c)
	if err := policy.Check(role, policy.OpViewRoster); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	courseID := c.Params("courseID")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	db := config.GetDB()
	if role == models.RoleTeacher {
		teaches, err := database.TeacherTeaches(db, auth.CallerID(c), courseID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check assignment"})
		}
		if !teaches {
			return c.Status(403).JSON(fiber.Map{"error": models.ErrForbidden.Error()})
		}
	}

	course, err := database.GetCourseByID(db, courseID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch course"})
	}

	roster, err := database.GetCourseRoster(db, courseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roster"})
	}

	return c.JSON(fiber.Map{
		"course":   course,
		"students": roster,
		"count":    len(roster),
	})
}

// GetGradeAPI returns the grade recorded for one enrollment, or null when
// it has not been graded yet. Students may only read their own enrollment;
// teachers only those in courses they are assigned to.
func GetGradeAPI(c *fiber.Ctx) error {
	enrollmentID := c.Params("enrollmentID")
	if _, err := uuid.Parse(enrollmentID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid enrollment id"})
	}

	db := config.GetDB()
	enrollment, err := database.GetEnrollmentByID(db, enrollmentID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollment"})
	}

	switch role := auth.CallerRole(c); role {
	case models.RoleAdmin:
	case models.RoleStudent:
		if enrollment.StudentID != auth.CallerID(c) {
			return c.Status(403).JSON(fiber.Map{"error": models.ErrForbidden.Error()})
		}
	case models.RoleTeacher:
		teaches, err := database.TeacherTeaches(db, auth.CallerID(c), enrollment.CourseID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check assignment"})
		}
		if !teaches {
			return c.Status(403).JSON(fiber.Map{"error": models.ErrForbidden.Error()})
		}
	default:
		return c.Status(403).JSON(fiber.Map{"error": models.ErrForbidden.Error()})
	}

	grade, err := database.GetGradeForEnrollment(db, enrollmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade"})
	}
	return c.JSON(fiber.Map{"grade": grade})
}

// SetGradeAPI records or overwrites the grade for an enrollment. The
// authorization check runs before the range validation: an unassigned
// teacher gets 403 even for an invalid value.
func SetGradeAPI(c *fiber.Ctx) error {
	role := auth.CallerRole(c)
	if err := policy.Check(role, policy.OpSetGrade); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	enrollmentID := c.Params("enrollmentID")
	if _, err := uuid.Parse(enrollmentID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid enrollment id"})
	}

	db := config.GetDB()
	enrollment, err := database.GetEnrollmentByID(db, enrollmentID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollment"})
	}

	if role == models.RoleTeacher {
		teaches, err := database.TeacherTeaches(db, auth.CallerID(c), enrollment.CourseID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check assignment"})
		}
		if !teaches {
			return c.Status(403).JSON(fiber.Map{"error": models.ErrForbidden.Error()})
		}
	}

	type GradeRequest struct {
		Value float64 `json:"value"`
	}
	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	grade, err := database.UpsertGrade(db, enrollmentID, req.Value)
	if errors.Is(err, models.ErrInvalidRange) {
		return c.Status(400).JSON(fiber.Map{"error": models.ErrInvalidRange.Error()})
	}
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save grade"})
	}
	return c.JSON(fiber.Map{"grade": grade})
}
