package database

import (
	"database/sql"
	"fmt"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

// Enroll adds a student to a course. The duplicate check, the capacity check
// and the insert run in one transaction that holds a row lock on the course,
// so two concurrent enrollments for the last seat serialize: the first to
// commit wins and the loser sees ErrCourseFull. The unique_enrollment
// constraint backstops the duplicate check against races with other writers.
func Enroll(db *sql.DB, studentID, courseID string) (*models.Enrollment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin enrollment: %w", err)
	}
	defer tx.Rollback()

	// Lock the course row for the duration of the capacity decision.
	var capacity int
	err = tx.QueryRow(`SELECT capacity FROM courses WHERE id = $1 FOR UPDATE`, courseID).Scan(&capacity)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock course: %w", err)
	}

	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)
	`, studentID, courseID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing enrollment: %w", err)
	}
	if exists {
		return nil, models.ErrAlreadyEnrolled
	}

	var enrolled int
	err = tx.QueryRow(`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&enrolled)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if enrolled >= capacity {
		return nil, models.ErrCourseFull
	}

	enrollment := &models.Enrollment{StudentID: studentID, CourseID: courseID}
	err = tx.QueryRow(`
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, studentID, courseID).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if isUniqueViolation(err) {
		return nil, models.ErrAlreadyEnrolled
	}
	if isForeignKeyViolation(err) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enrollment: %w", err)
	}
	return enrollment, nil
}

// Drop removes a student's enrollment in a course. The store cascades the
// delete to the enrollment's grade. Dropping a non-existent enrollment
// returns ErrNotFound, not a silent success.
func Drop(db *sql.DB, studentID, courseID string) error {
	res, err := db.Exec(`
		DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2
	`, studentID, courseID)
	if err != nil {
		return fmt.Errorf("failed to drop enrollment: %w", err)
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

// DeleteEnrollmentByID is the admin-side delete; same cascade semantics as
// Drop.
func DeleteEnrollmentByID(db *sql.DB, enrollmentID string) error {
	res, err := db.Exec(`DELETE FROM enrollments WHERE id = $1`, enrollmentID)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
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

func GetEnrollmentByID(db *sql.DB, enrollmentID string) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{}
	query := `SELECT id, student_id, course_id, created_at
			  FROM enrollments WHERE id = $1`

	err := db.QueryRow(query, enrollmentID).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	return enrollment, nil
}

// GetEnrollmentsForStudent returns the student's courses joined with their
// grade, when one exists.
func GetEnrollmentsForStudent(db *sql.DB, studentID string) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
			c.id, c.name, c.department, c.capacity, c.created_at,
			g.id, g.value
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		LEFT JOIN grades g ON g.enrollment_id = e.id
		WHERE e.student_id = $1
		ORDER BY c.department, c.name
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{}
		course := &models.Course{}
		var gradeID sql.NullString
		var gradeValue sql.NullFloat64

		err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
			&course.ID, &course.Name, &course.Department, &course.Capacity, &course.CreatedAt,
			&gradeID, &gradeValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}

		enrollment.Course = course
		if gradeID.Valid {
			enrollment.Grade = &models.Grade{
				ID:           gradeID.String,
				EnrollmentID: enrollment.ID,
				Value:        gradeValue.Float64,
			}
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

// GetAllEnrollments is the admin-side listing, joined with student and
// course summaries.
func GetAllEnrollments(db *sql.DB) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
			u.username, u.role,
			c.name, c.department, c.capacity
		FROM enrollments e
		JOIN users u ON e.student_id = u.id
		JOIN courses c ON e.course_id = c.id
		ORDER BY u.username, c.name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{}
		student := &models.User{}
		course := &models.Course{}
		var role string

		err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
			&student.Username, &role,
			&course.Name, &course.Department, &course.Capacity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}

		student.ID = enrollment.StudentID
		student.Role = models.Role(role)
		course.ID = enrollment.CourseID
		enrollment.Student = student
		enrollment.Course = course
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}
