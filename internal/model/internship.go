package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Stored internship status values. Effective openness is always derived
// through IsOpen, never read from Status alone.
var (
	InternshipStatusOpen   = "Open"
	InternshipStatusClosed = "Closed"
)

// EditableInternshipInfo is the allow-list of internship fields the owning
// employer may change. Identifier, owner and timestamps are immutable.
type EditableInternshipInfo struct {
	Title        string         `gorm:"type:text" json:"title"`
	Company      string         `gorm:"type:text" json:"company"`
	Location     string         `gorm:"type:text" json:"location"`
	Category     string         `gorm:"type:text" json:"category"`
	Mode         string         `gorm:"type:text" json:"mode"`
	Duration     string         `gorm:"type:text" json:"duration"`
	MinSalary    *int           `json:"min_salary,omitempty"`
	MaxSalary    *int           `json:"max_salary,omitempty"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Status       string         `gorm:"type:text;default:'Open'" json:"status"`
	ApplyBy      *time.Time     `gorm:"type:timestamp" json:"apply_by,omitempty"`
}

// Internship is gorm model for an internship posting owned by one employer.
type Internship struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	PostedByID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"posted_by"`
	PostedBy   User      `gorm:"foreignKey:PostedByID;references:ID" json:"-"`
	EditableInternshipInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOpen derives effective openness from stored status and deadline.
// Every code path that displays or enforces openness must go through here.
func (i *Internship) IsOpen(now time.Time) bool {
	if !strings.EqualFold(i.Status, InternshipStatusOpen) {
		return false
	}
	if i.ApplyBy != nil && i.ApplyBy.Before(now) {
		return false
	}
	return true
}

// DeadlinePassed reports whether the application deadline elapsed.
// A missing deadline never passes.
func (i *Internship) DeadlinePassed(now time.Time) bool {
	return i.ApplyBy != nil && i.ApplyBy.Before(now)
}

// ValidInternshipStatus reports whether s is an accepted stored status value.
func ValidInternshipStatus(s string) bool {
	return strings.EqualFold(s, InternshipStatusOpen) || strings.EqualFold(s, InternshipStatusClosed)
}
