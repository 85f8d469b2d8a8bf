package models

import "time"

// Course represents a university course with a fixed seat capacity.
type Course struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name       string    `json:"name" gorm:"not null" validate:"required"`
	Department string    `json:"department" gorm:"not null" validate:"required"`
	Capacity   int       `json:"capacity" gorm:"not null" validate:"required,gt=0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Enrollments []*Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
}

// CourseStatus is the machine-readable seat summary for a single course.
type CourseStatus struct {
	CourseID  string `json:"course_id"`
	Enrolled  int    `json:"enrolled"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
	IsFull    bool   `json:"is_full"`
}

// CourseListing is a course row as seen by a browsing student: the seat
// summary plus whether the caller is already enrolled.
type CourseListing struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	Capacity      int    `json:"capacity"`
	EnrolledCount int    `json:"enrolled_count"`
	Available     int    `json:"available"`
	IsFull        bool   `json:"is_full"`
	IsEnrolled    bool   `json:"is_enrolled"`
}
