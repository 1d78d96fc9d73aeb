package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account for any of the dashboard roles. Records are only ever
// soft-deleted; isDeleted stays false on live accounts.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"` // Hide from JSON responses
	Role           string             `bson:"role" json:"role"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	OrganizationID string             `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	PhotoURL       string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`

	// Doctor-only fields, required when Role == "doctor".
	HospitalName       string `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	Specialization     string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	RegistrationNumber string `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`

	IsDeleted bool `bson:"isDeleted" json:"isDeleted"`
}
