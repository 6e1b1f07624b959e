package entity

// Clinician represents clinician credentials and registration data.
type Clinician struct {
	ID                  int    `gorm:"primaryKey;autoIncrement" json:"clinician_id"`
	UserID              *int   `gorm:"uniqueIndex" json:"user_id,omitempty"`
	FullName            string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email               string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone               string `gorm:"type:varchar(20);not null" json:"phone"`
	PasswordHash        string `gorm:"type:varchar(255);not null" json:"-"`
	MedicalRegNumber    string `gorm:"type:varchar(50);uniqueIndex" json:"medical_reg_number"`
	Specialization      string `gorm:"type:text;not null" json:"specialization"`
	YearsOfExperience   int    `gorm:"not null" json:"years_of_experience"`
	AffiliatedHospitals string `gorm:"type:text" json:"affiliated_hospitals"`
	AadharNumber        string `gorm:"type:varchar(20);uniqueIndex;not null" json:"aadhar_number"`

	// Relationships
	User    *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Queries []Query `gorm:"foreignKey:ClinicianID;constraint:OnDelete:SET NULL" json:"queries,omitempty"`
}

func (Clinician) TableName() string {
	return "clinicians"
}
