package models

import "time"

// User represents a student, teacher or admin account. The role is fixed at
// creation time.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	PasswordHash string    `json:"-" gorm:"not null" validate:"required"`
	Role         Role      `json:"role" gorm:"not null" validate:"required"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Enrollments []*Enrollment        `json:"enrollments,omitempty" gorm:"foreignKey:StudentID"`
	Assignments []*TeacherAssignment `json:"assignments,omitempty" gorm:"foreignKey:TeacherID"`
}
