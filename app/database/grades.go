package database

import (
	"database/sql"
	"fmt"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

// UpsertGrade records the grade for an enrollment as a single atomic
// statement: the unique index on enrollment_id plus ON CONFLICT guarantees
// at most one grade row even under concurrent graders, with the last writer
// winning. The caller validates the range first; the CHECK constraint is a
// backstop.
func UpsertGrade(db *sql.DB, enrollmentID string, value float64) (*models.Grade, error) {
	if err := models.ValidateGradeValue(value); err != nil {
		return nil, err
	}

	grade := &models.Grade{EnrollmentID: enrollmentID, Value: value}
	err := db.QueryRow(`
		INSERT INTO grades (enrollment_id, value)
		VALUES ($1, $2)
		ON CONFLICT (enrollment_id) DO UPDATE SET value = EXCLUDED.value
		RETURNING id
	`, enrollmentID, value).Scan(&grade.ID)
	if isForeignKeyViolation(err) {
		return nil, models.ErrNotFound
	}
	if isCheckViolation(err) {
		return nil, models.ErrInvalidRange
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert grade: %w", err)
	}
	return grade, nil
}

func GetGradeForEnrollment(db *sql.DB, enrollmentID string) (*models.Grade, error) {
	grade := &models.Grade{}
	query := `SELECT id, enrollment_id, value FROM grades WHERE enrollment_id = $1`

	err := db.QueryRow(query, enrollmentID).Scan(&grade.ID, &grade.EnrollmentID, &grade.Value)
	if err == sql.ErrNoRows {
		return nil, nil // ungraded enrollment
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade: %w", err)
	}
	return grade, nil
}

// RosterEntry is one student row in a course roster, with the grade when
// one has been recorded.
type RosterEntry struct {
	EnrollmentID string   `json:"enrollment_id"`
	StudentID    string   `json:"student_id"`
	StudentName  string   `json:"student_name"`
	Grade        *float64 `json:"grade"`
}

// GetCourseRoster returns every enrollment in a course with the student's
// name and current grade.
func GetCourseRoster(db *sql.DB, courseID string) ([]*RosterEntry, error) {
	query := `
		SELECT e.id, u.id, u.username, g.value
		FROM enrollments e
		JOIN users u ON e.student_id = u.id
		LEFT JOIN grades g ON g.enrollment_id = e.id
		WHERE e.course_id = $1
		ORDER BY u.username
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	defer rows.Close()

	var roster []*RosterEntry
	for rows.Next() {
		entry := &RosterEntry{}
		var grade sql.NullFloat64
		if err := rows.Scan(&entry.EnrollmentID, &entry.StudentID, &entry.StudentName, &grade); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		if grade.Valid {
			entry.Grade = &grade.Float64
		}
		roster = append(roster, entry)
	}
	return roster, rows.Err()
}
