package courses

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

// GetCoursesAPI lists the catalog. Students get seat summaries plus their
// own enrollment flag; other roles get the plain course list.
func GetCoursesAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpBrowseCatalog); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	if auth.CallerRole(c) == models.RoleStudent {
		listings, err := database.ListCoursesForStudent(db, auth.CallerID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
		}
		return c.JSON(fiber.Map{
			"courses": listings,
			"count":   len(listings),
		})
	}

	courses, err := database.GetAllCourses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func GetCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch course"})
	}
	return c.JSON(fiber.Map{"course": course})
}

// GetCourseStatusAPI is the machine-readable seat summary consumed by
// dashboards. Always computed live against the ledger.
func GetCourseStatusAPI(c *fiber.Ctx) error {
	if err := policy.Check(auth.CallerRole(c), policy.OpViewCourseStatus); err != nil {
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	}

	courseID := c.Params("id")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	status, err := database.GetCourseStatus(config.GetDB(), courseID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch course status"})
	}
	return c.JSON(status)
}

type courseInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Capacity   int    `json:"capacity"`
}

func (in *courseInput) validate() error {
	if in.Name == "" || in.Department == "" {
		return errors.New("name and department are required")
	}
	if in.Capacity <= 0 {
		return errors.New("capacity must be a positive integer")
	}
	return nil
}

func CreateCourseAPI(c *fiber.Ctx) error {
	var req courseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	course, err := database.CreateCourse(config.GetDB(), req.Name, req.Department, req.Capacity)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(201).JSON(fiber.Map{"course": course})
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var req courseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.UpdateCourse(config.GetDB(), courseID, req.Name, req.Department, req.Capacity)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(fiber.Map{"message": "Course updated"})
}

// DeleteCourseAPI removes a course; enrollments, grades and assignments
// referencing it cascade away with it.
func DeleteCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid course id"})
	}

	err := database.DeleteCourse(config.GetDB(), courseID)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}
