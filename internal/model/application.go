package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusApplied is the initial status of every application
	ApplicationStatusApplied = "applied"
	// ApplicationStatusUnderReview indicates the employer started reviewing
	ApplicationStatusUnderReview = "under_review"
	// ApplicationStatusAccepted indicates the employer accepted the applicant
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates the employer rejected the applicant
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s belongs to the fixed status set.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links one student to one internship. The composite unique
// index turns a duplicate application into a storage-level conflict instead
// of a racy check-then-create.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	Status    string    `gorm:"type:text;default:'applied'" json:"status"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_applicant_internship" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;references:ID" json:"-"`

	InternshipID uint       `gorm:"not null;index;uniqueIndex:idx_applications_applicant_internship" json:"internship_id"`
	Internship   Internship `gorm:"foreignKey:InternshipID;references:ID" json:"-"`
}
