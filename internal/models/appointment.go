package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment references its doctor by hex string rather than ObjectID;
// the reference is resolved at read time by the lookup pipeline.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName     string             `bson:"patientName" json:"patientName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DoctorID        string             `bson:"doctorId" json:"doctorId"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Slot            string             `bson:"slot" json:"slot"`
}
