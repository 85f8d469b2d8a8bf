package database

import (
	"database/sql"
	"fmt"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

func CreateCourse(db *sql.DB, name, department string, capacity int) (*models.Course, error) {
	course := &models.Course{Name: name, Department: department, Capacity: capacity}
	err := db.QueryRow(`
		INSERT INTO courses (name, department, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, name, department, capacity).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	course := &models.Course{}
	query := `SELECT id, name, department, capacity, created_at
			  FROM courses WHERE id = $1`

	err := db.QueryRow(query, courseID).Scan(
		&course.ID, &course.Name, &course.Department, &course.Capacity, &course.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	return course, nil
}

func GetAllCourses(db *sql.DB) ([]*models.Course, error) {
	rows, err := db.Query(`SELECT id, name, department, capacity, created_at
						   FROM courses ORDER BY department, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.Department, &course.Capacity, &course.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func UpdateCourse(db *sql.DB, courseID, name, department string, capacity int) error {
	res, err := db.Exec(`
		UPDATE courses SET name = $2, department = $3, capacity = $4
		WHERE id = $1
	`, courseID, name, department, capacity)
	if isCheckViolation(err) {
		return fmt.Errorf("capacity must be positive: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteCourse removes the course; the store cascades to its enrollments
// (and their grades) and teacher assignments.
func DeleteCourse(db *sql.DB, courseID string) error {
	res, err := db.Exec(`DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetEnrollmentCount returns the number of active enrollments in a course.
func GetEnrollmentCount(db *sql.DB, courseID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// GetCourseStatus returns the live seat summary for one course. The count
// and capacity come from a single query so the numbers are consistent with
// each other; enrollment decisions never read this, they recount inside
// their own transaction.
func GetCourseStatus(db *sql.DB, courseID string) (*models.CourseStatus, error) {
	status := &models.CourseStatus{}
	query := `
		SELECT c.id, c.capacity, COUNT(e.id)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.id = $1
		GROUP BY c.id, c.capacity
	`

	err := db.QueryRow(query, courseID).Scan(&status.CourseID, &status.Capacity, &status.Enrolled)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course status: %w", err)
	}

	status.Available = status.Capacity - status.Enrolled
	if status.Available < 0 {
		status.Available = 0
	}
	status.IsFull = status.Enrolled >= status.Capacity
	return status, nil
}

// ListCoursesForStudent returns every course with its seat summary plus
// whether the given student is already enrolled.
func ListCoursesForStudent(db *sql.DB, studentID string) ([]*models.CourseListing, error) {
	query := `
		SELECT c.id, c.name, c.department, c.capacity,
			COUNT(e.id),
			EXISTS (SELECT 1 FROM enrollments me WHERE me.course_id = c.id AND me.student_id = $1)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		GROUP BY c.id, c.name, c.department, c.capacity
		ORDER BY c.department, c.name
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course listings: %w", err)
	}
	defer rows.Close()

	var listings []*models.CourseListing
	for rows.Next() {
		l := &models.CourseListing{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Department, &l.Capacity, &l.EnrolledCount, &l.IsEnrolled); err != nil {
			return nil, fmt.Errorf("failed to scan course listing: %w", err)
		}
		l.Available = l.Capacity - l.EnrolledCount
		if l.Available < 0 {
			l.Available = 0
		}
		l.IsFull = l.EnrolledCount >= l.Capacity
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
