package models

import "time"

// Enrollment links a student to a course. The (student_id, course_id) pair
// is unique: a student cannot double-enroll.
type Enrollment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID  string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student *User   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Course  *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
	Grade   *Grade  `json:"grade,omitempty" gorm:"foreignKey:EnrollmentID;references:ID"`
}

// TeacherAssignment grants a teacher write access to one course's
// enrollments and grades. The (teacher_id, course_id) pair is unique.
type TeacherAssignment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	TeacherID string    `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID  string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Teacher *User   `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Course  *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}
