package entities

import "time"

const (
	ContactSubjectProgram     = "program"
	ContactSubjectRecruitment = "recruitment"
	ContactSubjectPartnership = "partnership"
	ContactSubjectGeneral     = "general"
)

// ContactMessage is an inbound contact-form submission.
//
// Storage model (DynamoDB):
//   - PK: id

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
