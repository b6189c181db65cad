package request

import "mbg_backend/internal/domain/entities"

// ProgramRegistrationRequest is the enrollment payload posted by the program
// detail page.

type ProgramRegistrationRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (r ProgramRegistrationRequest) ToEntity(programID string) entities.ProgramRegistration {
	return entities.ProgramRegistration{
		ProgramID:   programID,
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
