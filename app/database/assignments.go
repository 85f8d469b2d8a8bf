package database

import (
	"database/sql"
	"fmt"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

// CreateAssignment links a teacher to a course they teach. The user must
// hold the teacher role; the unique_teacher_course constraint rejects
// duplicate pairs.
func CreateAssignment(db *sql.DB, teacherID, courseID string) (*models.TeacherAssignment, error) {
	teacher, err := GetUserByID(db, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != models.RoleTeacher {
		return nil, fmt.Errorf("user %s is not a teacher", teacher.Username)
	}

	assignment := &models.TeacherAssignment{TeacherID: teacherID, CourseID: courseID}
	err = db.QueryRow(`
		INSERT INTO teacher_courses (teacher_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, teacherID, courseID).Scan(&assignment.ID, &assignment.CreatedAt)
	if isUniqueViolation(err) {
		return nil, models.ErrDuplicateAssignment
	}
	if isForeignKeyViolation(err) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment, nil
}

func DeleteAssignment(db *sql.DB, assignmentID string) error {
	res, err := db.Exec(`DELETE FROM teacher_courses WHERE id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
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

// TeacherTeaches reports whether the teacher is currently assigned to the
// course. Authorization re-derives this on every call; assignment changes
// take effect immediately.
func TeacherTeaches(db *sql.DB, teacherID, courseID string) (bool, error) {
	var teaches bool
	err := db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM teacher_courses WHERE teacher_id = $1 AND course_id = $2)
	`, teacherID, courseID).Scan(&teaches)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return teaches, nil
}

// GetCoursesForTeacher returns the teacher's assigned courses with their
// live enrollment counts.
func GetCoursesForTeacher(db *sql.DB, teacherID string) ([]*models.CourseListing, error) {
	query := `
		SELECT c.id, c.name, c.department, c.capacity, COUNT(e.id)
		FROM teacher_courses tc
		JOIN courses c ON tc.course_id = c.id
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE tc.teacher_id = $1
		GROUP BY c.id, c.name, c.department, c.capacity
		ORDER BY c.department, c.name
	`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.CourseListing
	for rows.Next() {
		l := &models.CourseListing{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Department, &l.Capacity, &l.EnrolledCount); err != nil {
			return nil, fmt.Errorf("failed to scan assigned course: %w", err)
		}
		l.Available = l.Capacity - l.EnrolledCount
		if l.Available < 0 {
			l.Available = 0
		}
		l.IsFull = l.EnrolledCount >= l.Capacity
		courses = append(courses, l)
	}
	return courses, rows.Err()
}

// GetAllAssignments is the admin-side listing joined with teacher and
// course names.
func GetAllAssignments(db *sql.DB) ([]*models.TeacherAssignment, error) {
	query := `
		SELECT tc.id, tc.teacher_id, tc.course_id, tc.created_at,
			u.username, c.name, c.department, c.capacity
		FROM teacher_courses tc
		JOIN users u ON tc.teacher_id = u.id
		JOIN courses c ON tc.course_id = c.id
		ORDER BY u.username, c.name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.TeacherAssignment
	for rows.Next() {
		assignment := &models.TeacherAssignment{}
		teacher := &models.User{Role: models.RoleTeacher}
		course := &models.Course{}

		err := rows.Scan(
			&assignment.ID, &assignment.TeacherID, &assignment.CourseID, &assignment.CreatedAt,
			&teacher.Username, &course.Name, &course.Department, &course.Capacity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}

		teacher.ID = assignment.TeacherID
		course.ID = assignment.CourseID
		assignment.Teacher = teacher
		assignment.Course = course
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}
