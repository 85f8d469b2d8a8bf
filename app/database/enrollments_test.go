package database

import (
	"errors"
	"sync"
	"testing"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

func TestEnrollDropRoundTrip(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Intro", 5)

	if _, err := Enroll(db, student.ID, course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if err := Drop(db, student.ID, course.ID); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := Enroll(db, student.ID, course.ID); err != nil {
		t.Fatalf("re-enroll after drop: %v", err)
	}

	count, err := GetEnrollmentCount(db, course.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one enrollment row, got %d", count)
	}
}

func TestEnrollDuplicateRejected(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Intro", 5)

	if _, err := Enroll(db, student.ID, course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if _, err := Enroll(db, student.ID, course.ID); !errors.Is(err, models.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)

	_, err := Enroll(db, student.ID, "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLastSeatScenario(t *testing.T) {
	db := testDB(t)
	studentA := makeUser(t, db, models.RoleStudent)
	studentB := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Tiny Seminar", 1)

	if _, err := Enroll(db, studentA.ID, course.ID); err != nil {
		t.Fatalf("A enroll: %v", err)
	}

	status, err := GetCourseStatus(db, course.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.IsFull || status.Available != 0 {
		t.Fatalf("expected full course, got %+v", status)
	}

	if _, err := Enroll(db, studentB.ID, course.ID); !errors.Is(err, models.ErrCourseFull) {
		t.Fatalf("expected ErrCourseFull for B, got %v", err)
	}

	if err := Drop(db, studentA.ID, course.ID); err != nil {
		t.Fatalf("A drop: %v", err)
	}

	status, err = GetCourseStatus(db, course.ID)
	if err != nil {
		t.Fatalf("status after drop: %v", err)
	}
	if status.IsFull {
		t.Fatalf("expected seat to free up, got %+v", status)
	}

	if _, err := Enroll(db, studentB.ID, course.ID); err != nil {
		t.Fatalf("B enroll after drop: %v", err)
	}
}

func TestConcurrentEnrollNeverOvershoots(t *testing.T) {
	db := testDB(t)
	course := makeCourse(t, db, "Popular", 3)

	students := make([]*models.User, 8)
	for i := range students {
		students[i] = makeUser(t, db, models.RoleStudent)
	}

	var wg sync.WaitGroup
	results := make([]error, len(students))
	for i, student := range students {
		wg.Add(1)
		go func(i int, studentID string) {
			defer wg.Done()
			_, results[i] = Enroll(db, studentID, course.ID)
		}(i, student.ID)
	}
	wg.Wait()

	var wins, fulls int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrCourseFull):
			fulls++
		default:
			t.Fatalf("unexpected enroll error: %v", err)
		}
	}
	if wins != 3 {
		t.Fatalf("expected exactly 3 winners, got %d (%d full)", wins, fulls)
	}

	count, err := GetEnrollmentCount(db, course.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("capacity overshot: %d enrollments for 3 seats", count)
	}
}

func TestDropNonExistent(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Intro", 5)

	if err := Drop(db, student.ID, course.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Dropping twice yields NotFound, not a silent success.
	if _, err := Enroll(db, student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := Drop(db, student.ID, course.ID); err != nil {
		t.Fatalf("first drop: %v", err)
	}
	if err := Drop(db, student.ID, course.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second drop, got %v", err)
	}
}

func TestDropCascadesGrade(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Intro", 5)

	enrollment, err := Enroll(db, student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := UpsertGrade(db, enrollment.ID, 88); err != nil {
		t.Fatalf("grade: %v", err)
	}

	if err := Drop(db, student.ID, course.ID); err != nil {
		t.Fatalf("drop: %v", err)
	}

	var orphans int
	if err := db.QueryRow(`SELECT COUNT(*) FROM grades WHERE enrollment_id = $1`, enrollment.ID).Scan(&orphans); err != nil {
		t.Fatalf("count grades: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected grade to cascade away, found %d rows", orphans)
	}
}

func TestGetEnrollmentsForStudentIncludesGrades(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	graded := makeCourse(t, db, "Graded", 5)
	ungraded := makeCourse(t, db, "Ungraded", 5)

	enrollment, err := Enroll(db, student.ID, graded.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := Enroll(db, student.ID, ungraded.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := UpsertGrade(db, enrollment.ID, 91.5); err != nil {
		t.Fatalf("grade: %v", err)
	}

	enrollments, err := GetEnrollmentsForStudent(db, student.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(enrollments) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(enrollments))
	}

	var foundGrade bool
	for _, e := range enrollments {
		if e.CourseID == graded.ID {
			if e.Grade == nil || e.Grade.Value != 91.5 {
				t.Fatalf("expected grade 91.5 on %s, got %+v", graded.Name, e.Grade)
			}
			foundGrade = true
		}
		if e.CourseID == ungraded.ID && e.Grade != nil {
			t.Fatalf("expected no grade on %s", ungraded.Name)
		}
	}
	if !foundGrade {
		t.Fatal("graded course missing from listing")
	}
}
