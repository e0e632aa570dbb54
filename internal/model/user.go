// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role constants for User.Role
var (
	// RoleStudent marks an account that browses internships and applies
	RoleStudent = "student"
	// RoleEmployer marks an account that posts internships and reviews applications
	RoleEmployer = "employer"
)

// EditableUserInfo is the part of a user profile that the owner may overwrite
// through the profile endpoint. Identity fields (id, email, role) live on User
// directly and are immutable after registration.
type EditableUserInfo struct {
	Name     string `gorm:"type:text" json:"name"`
	Phone    string `gorm:"type:text" json:"phone"`
	Location string `gorm:"type:text" json:"location"`
	About    string `gorm:"type:text" json:"about"`
	Avatar   string `gorm:"type:text" json:"avatar"`

	// Student profile fields
	University string         `gorm:"type:text" json:"university"`
	Degree     string         `gorm:"type:text" json:"degree"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`

	// Employer profile fields
	Company            string `gorm:"type:text" json:"company"`
	CompanyWebsite     string `gorm:"type:text" json:"company_website"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	CompanyLogo        string `gorm:"type:text" json:"company_logo"`
}

// User is gorm model for both student and employer accounts.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"type:text" json:"-"`
	Role     string    `gorm:"type:text;default:'student'" json:"role"`
	EditableUserInfo

	// Resume holds the served path of the uploaded resume file,
	// ResumeFileID references the stored blob.
	Resume       string `gorm:"type:text" json:"resume"`
	ResumeFileID *int   `json:"resume_file_id,omitempty"`
	ResumeFile   File   `gorm:"foreignKey:ResumeFileID;references:ID" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// HasCompleteProfile reports whether a student filled the profile fields
// required before an application may be submitted.
func (u *User) HasCompleteProfile() bool {
	return u.Phone != "" && u.University != "" && u.Degree != "" && len(u.Skills) > 0
}
