package entity

// Patient represents a person followed by the clinic
type Patient struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	Age       int    `gorm:"not null" json:"age"`
	Phone     string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email     string `gorm:"type:varchar(100)" json:"email,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
