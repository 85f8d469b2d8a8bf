package database

import (
	"database/sql"
	"log"
)

// EnsureSchema creates the tables and constraints the ledgers rely on. Every
// statement is idempotent so it can run on each startup. Uniqueness and
// cascade rules live in the store itself: the (student_id, course_id) and
// (teacher_id, course_id) pairs are unique, and deleting a user, course or
// enrollment removes its dependents in the same transaction.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('student', 'teacher', 'admin')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			department TEXT NOT NULL,
			capacity INT NOT NULL CHECK (capacity > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_enrollment UNIQUE (student_id, course_id)
		)`,
		`CREATE TABLE IF NOT EXISTS grades (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL UNIQUE REFERENCES enrollments(id) ON DELETE CASCADE,
			value DOUBLE PRECISION NOT NULL CHECK (value >= 0 AND value <= 100)
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_teacher_course UNIQUE (teacher_id, course_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_teacher_courses_teacher ON teacher_courses(teacher_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Schema statement failed: %v", err)
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
