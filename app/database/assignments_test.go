package database

import (
	"errors"
	"testing"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

func TestTeacherTeachesReflectsCurrentState(t *testing.T) {
	db := testDB(t)
	teacher := makeUser(t, db, models.RoleTeacher)
	course := makeCourse(t, db, "Algorithms", 10)

	teaches, err := TeacherTeaches(db, teacher.ID, course.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if teaches {
		t.Fatal("teacher should not be assigned yet")
	}

	assignment, err := CreateAssignment(db, teacher.ID, course.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	teaches, err = TeacherTeaches(db, teacher.ID, course.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !teaches {
		t.Fatal("assignment should take effect immediately")
	}

	if err := DeleteAssignment(db, assignment.ID); err != nil {
		t.Fatalf("unassign: %v", err)
	}

	teaches, err = TeacherTeaches(db, teacher.ID, course.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if teaches {
		t.Fatal("revoked assignment should take effect immediately")
	}
}

func TestCreateAssignmentDuplicate(t *testing.T) {
	db := testDB(t)
	teacher := makeUser(t, db, models.RoleTeacher)
	course := makeCourse(t, db, "Algorithms", 10)

	if _, err := CreateAssignment(db, teacher.ID, course.ID); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	_, err := CreateAssignment(db, teacher.ID, course.ID)
	if !errors.Is(err, models.ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}
}

func TestCreateAssignmentRequiresTeacherRole(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Algorithms", 10)

	if _, err := CreateAssignment(db, student.ID, course.ID); err == nil {
		t.Fatal("expected assignment of a student to fail")
	}
}

func TestGetCoursesForTeacher(t *testing.T) {
	db := testDB(t)
	teacher := makeUser(t, db, models.RoleTeacher)
	student := makeUser(t, db, models.RoleStudent)
	assigned := makeCourse(t, db, "Assigned", 5)
	unassigned := makeCourse(t, db, "Unassigned", 5)

	if _, err := CreateAssignment(db, teacher.ID, assigned.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := Enroll(db, student.ID, assigned.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	courses, err := GetCoursesForTeacher(db, teacher.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 assigned course, got %d", len(courses))
	}
	if courses[0].ID != assigned.ID || courses[0].EnrolledCount != 1 {
		t.Fatalf("unexpected listing: %+v", courses[0])
	}
	if courses[0].ID == unassigned.ID {
		t.Fatal("unassigned course leaked into teacher listing")
	}
}
