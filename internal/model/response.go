package model

import (
	"time"

	"github.com/google/uuid"
)

// PosterSummary is the poster info attached to internship listings.
type PosterSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// InternshipSummary is the internship excerpt embedded in application listings.
type InternshipSummary struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	PostedBy uuid.UUID `json:"posted_by"`
}

// ApplicantSummary is the applicant profile excerpt exposed to the owning employer.
type ApplicantSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	University string    `json:"university"`
	Degree     string    `json:"degree"`
	Resume     string    `json:"resume"`
}

// InternshipResponse is an internship with derived openness and poster info.
type InternshipResponse struct {
	Internship
	IsOpen bool          `json:"is_open"`
	Poster PosterSummary `json:"posted_by_user"`
}

// ToResponse converts an Internship to InternshipResponse, deriving openness
// at the supplied instant. PostedBy must be preloaded for the poster summary
// to carry name and email.
func (i *Internship) ToResponse(now time.Time) InternshipResponse {
	return InternshipResponse{
		Internship: *i,
		IsOpen:     i.IsOpen(now),
		Poster: PosterSummary{
			ID:    i.PostedByID,
			Name:  i.PostedBy.Name,
			Email: i.PostedBy.Email,
		},
	}
}

// ApplicationResponse is an application with its internship excerpt and,
// for employer-facing listings, the applicant profile excerpt.
type ApplicationResponse struct {
	Application
	Internship InternshipSummary `json:"internship"`
	Applicant  *ApplicantSummary `json:"applicant,omitempty"`
}

// ToResponse converts an Application to ApplicationResponse. The applicant
// excerpt is attached only when withApplicant is set; student-facing listings
// omit it. Internship (and Applicant when requested) must be preloaded.
func (a *Application) ToResponse(withApplicant bool) ApplicationResponse {
	resp := ApplicationResponse{
		Application: *a,
		Internship: InternshipSummary{
			ID:       a.InternshipID,
			Title:    a.Internship.Title,
			Company:  a.Internship.Company,
			Location: a.Internship.Location,
			PostedBy: a.Internship.PostedByID,
		},
	}
	if withApplicant {
		resp.Applicant = &ApplicantSummary{
			ID:         a.ApplicantID,
			Name:       a.Applicant.Name,
			Email:      a.Applicant.Email,
			Phone:      a.Applicant.Phone,
			University: a.Applicant.University,
			Degree:     a.Applicant.Degree,
			Resume:     a.Applicant.Resume,
		}
	}
	return resp
}

// AuthResponse is the payload returned by register and login.
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
