package models

// Grade holds the single grade for one enrollment. At most one row exists
// per enrollment; grading is an upsert, never a second insert.
type Grade struct {
	ID           string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EnrollmentID string  `json:"enrollment_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	Value        float64 `json:"value" gorm:"not null;type:double precision" validate:"gte=0,lte=100"`
}

// ValidateGradeValue checks the inclusive [0, 100] range.
func ValidateGradeValue(value float64) error {
	if value < 0 || value > 100 {
		return ErrInvalidRange
	}
	return nil
}
