package entity

// Doctor is a practitioner of the clinic
type Doctor struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	Specialty    string     `gorm:"type:varchar(100);not null" json:"specialty"`
	Office       string     `gorm:"type:varchar(100);not null" json:"office"`
	Availability WeekdaySet `gorm:"type:varchar(200);not null" json:"availability"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DisplayName renders "first last", the way appointment lists show people
func (d *Doctor) DisplayName() string {
	return d.FirstName + " " + d.LastName
}
