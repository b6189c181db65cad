package request

import "mbg_backend/internal/domain/entities"

// EventRegistrationRequest is the sign-up payload posted by the event detail
// page. The event id comes from the URL, not the body.

type EventRegistrationRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experience_level"`
	Goals           string `json:"goals"`
	HeardAbout      string `json:"heard_about"`
}

func (r EventRegistrationRequest) ToEntity(eventID string) entities.EventRegistration {
	return entities.EventRegistration{
		EventID:         eventID,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Company:         r.Company,
		JobTitle:        r.JobTitle,
		Industry:        r.Industry,
		ExperienceLevel: r.ExperienceLevel,
		Goals:           r.Goals,
		HeardAbout:      r.HeardAbout,
	}
}
