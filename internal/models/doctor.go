package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorName     string             `bson:"doctorName" json:"doctorName"`
	Email          string             `bson:"email" json:"email"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Rating         float64            `bson:"rating" json:"rating"`
	Experience     string             `bson:"experience" json:"experience"`
	Image          string             `bson:"image" json:"image"`
}
