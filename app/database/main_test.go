package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/James-Dyer/cse108-lab08/app/models"
)

// testDB opens the database named by TEST_DATABASE_URL and resets every
// table. Tests that need a real store skip when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("ping database: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if _, err := db.Exec(`TRUNCATE users, courses, enrollments, grades, teacher_courses CASCADE`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
	return db
}

var testUserSeq int

// makeUser provisions a user with a unique name for this test run.
func makeUser(t *testing.T, db *sql.DB, role models.Role) *models.User {
	t.Helper()
	testUserSeq++
	user, err := CreateUser(db, fmt.Sprintf("%s-%s-%d", t.Name(), role, testUserSeq), "password123", role)
	if err != nil {
		t.Fatalf("create %s: %v", role, err)
	}
	return user
}

func makeCourse(t *testing.T, db *sql.DB, name string, capacity int) *models.Course {
	t.Helper()
	course, err := CreateCourse(db, name, "CS", capacity)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}
