package entity

// Department groups doctors by medical discipline
type Department struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(500)" json:"description,omitempty"`

	// Relationships
	Doctors []DoctorProfile `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
