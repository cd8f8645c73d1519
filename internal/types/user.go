package types

import "github.com/go-playground/validator/v10"

// User is the authenticated user's profile, fetched once per session.
type User struct {
	ID              int64    `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	CurrentRole     string   `json:"current_role,omitempty"`
	ResumeText      string   `json:"resume_text,omitempty"`
	EmailSignature  string   `json:"email_signature,omitempty"`
}

// UpdateProfileRequest updates the current user's profile. Zero-value fields
// are omitted so the backend treats them as unchanged.
type UpdateProfileRequest struct {
	FullName        string   `json:"full_name,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty" validate:"gte=0"`
	CurrentRole     string   `json:"current_role,omitempty"`
	ResumeText      string   `json:"resume_text,omitempty"`
	EmailSignature  string   `json:"email_signature,omitempty"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
