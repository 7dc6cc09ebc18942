package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a hospital patient record. Patients are registered by front-desk
// staff and do not carry login accounts.
type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MRN              string    `gorm:"column:mrn;type:varchar(50);uniqueIndex;not null" json:"mrn"`
	FullName         string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	PhoneNumber      string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Email            string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"type:char(1);not null" json:"gender"`
	BloodGroup       string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
