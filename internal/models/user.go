package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
	// Set only for accounts enrolled in credential-verified token
	// issuance. Never serialized to JSON.
	PasswordHash string `bson:"passwordHash,omitempty" json:"-"`
}
