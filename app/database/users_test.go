package database

import (
	"errors"
	"testing"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

func TestCreateUserDuplicateName(t *testing.T) {
	db := testDB(t)

	if _, err := CreateUser(db, "taken", "password123", models.RoleStudent); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateUser(db, "taken", "different456", models.RoleTeacher)
	if !errors.Is(err, models.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	db := testDB(t)

	if _, err := CreateUser(db, "alice", "correct-horse", models.RoleStudent); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := VerifyCredentials(db, "alice", "correct-horse")
	if err != nil {
		t.Fatalf("expected login to succeed: %v", err)
	}
	if user.Username != "alice" || user.Role != models.RoleStudent {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Wrong password and unknown user yield the same error, so callers
	// cannot probe for account existence.
	_, badPass := VerifyCredentials(db, "alice", "wrong")
	_, noUser := VerifyCredentials(db, "nobody", "wrong")
	if !errors.Is(badPass, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", badPass)
	}
	if !errors.Is(noUser, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", noUser)
	}
	if badPass.Error() != noUser.Error() {
		t.Fatal("bad-password and unknown-user errors must be indistinguishable")
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := testDB(t)
	student := makeUser(t, db, models.RoleStudent)
	course := makeCourse(t, db, "Intro", 5)

	enrollment, err := Enroll(db, student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := UpsertGrade(db, enrollment.ID, 75); err != nil {
		t.Fatalf("grade: %v", err)
	}

	if err := DeleteUser(db, student.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	count, err := GetEnrollmentCount(db, course.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected enrollments to cascade, got %d", count)
	}

	var grades int
	if err := db.QueryRow(`SELECT COUNT(*) FROM grades`).Scan(&grades); err != nil {
		t.Fatalf("count grades: %v", err)
	}
	if grades != 0 {
		t.Fatalf("expected grades to cascade, got %d", grades)
	}

	if err := DeleteUser(db, student.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
