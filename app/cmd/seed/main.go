package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/James-Dyer/cse108-lab08/app/config"
	"github.com/James-Dyer/cse108-lab08/app/database"
	"github.com/James-Dyer/cse108-lab08/app/models"
)

// Seeds the database with the sample accounts, courses, enrollments and
// grades used for local development. Does nothing when users already exist.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var userCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		log.Fatal("Failed to check existing users:", err)
	}
	if userCount > 0 {
		fmt.Println("Database already seeded, nothing to do")
		return
	}

	if err := seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}
	fmt.Println("Database initialized with sample data")
}

func seed(db *sql.DB) error {
	admin, err := database.CreateUser(db, "admin", "admin123", models.RoleAdmin)
	if err != nil {
		return err
	}
	student1, err := database.CreateUser(db, "student1", "student123", models.RoleStudent)
	if err != nil {
		return err
	}
	student2, err := database.CreateUser(db, "student2", "student123", models.RoleStudent)
	if err != nil {
		return err
	}
	teacher1, err := database.CreateUser(db, "teacher1", "teacher123", models.RoleTeacher)
	if err != nil {
		return err
	}
	fmt.Printf("Created users: %s, %s, %s, %s\n",
		admin.Username, student1.Username, student2.Username, teacher1.Username)

	course1, err := database.CreateCourse(db, "Introduction to Computer Science", "CS", 30)
	if err != nil {
		return err
	}
	course2, err := database.CreateCourse(db, "Data Structures", "CS", 25)
	if err != nil {
		return err
	}
	course3, err := database.CreateCourse(db, "Web Development", "CS", 20)
	if err != nil {
		return err
	}
	fmt.Printf("Created courses: %s, %s, %s\n", course1.Name, course2.Name, course3.Name)

	for _, courseID := range []string{course1.ID, course2.ID} {
		if _, err := database.CreateAssignment(db, teacher1.ID, courseID); err != nil {
			return err
		}
	}

	type seedEnrollment struct {
		studentID string
		courseID  string
		grade     float64
	}
	seeds := []seedEnrollment{
		{student1.ID, course1.ID, 85.5},
		{student1.ID, course2.ID, 92.0},
		{student2.ID, course1.ID, 78.5},
	}
	for _, s := range seeds {
		enrollment, err := database.Enroll(db, s.studentID, s.courseID)
		if err != nil {
			return err
		}
		if _, err := database.UpsertGrade(db, enrollment.ID, s.grade); err != nil {
			return err
		}
	}

	return nil
}
