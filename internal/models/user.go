package models

import "time"

type Role string

const (
	RoleCandidate   Role = "candidate"
	RoleInterviewer Role = "interviewer"
	RoleAdmin       Role = "admin"
)

// User represents a registered user in the system. ExternalID is the
// identity-provider subject carried in the bearer token; exactly one user
// exists per subject.
type User struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	ExternalID string    `json:"externalId" bson:"externalId"`
	Image      string    `json:"image,omitempty" bson:"image,omitempty"`
	Role       Role      `json:"role" bson:"role"`
	Password   string    `json:"-" bson:"passwordHash"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleInterviewer, RoleAdmin:
		return true
	}
	return false
}

// SkillsProfile holds the self-reported background used to personalize
// mock-interview generation. At most one per user.
type SkillsProfile struct {
	ID                string    `json:"id" bson:"_id"`
	UserID            string    `json:"userId" bson:"userId"`
	Industry          string    `json:"industry" bson:"industry"`
	YearsOfExperience int       `json:"yearsOfExperience" bson:"yearsOfExperience"`
	Skills            []string  `json:"skills" bson:"skills"`
	Bio               string    `json:"bio" bson:"bio"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}
