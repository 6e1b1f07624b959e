package entity

// User represents the centralized account table. Role capability is carried
// by the two flags; the matching profile row lives in patients or clinicians.
type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"user_id"`
	IsPatient    bool   `gorm:"not null" json:"is_patient"`
	IsClinician  bool   `gorm:"not null" json:"is_clinician"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	// Relationships
	Patient   *Patient   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Clinician *Clinician `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"clinician,omitempty"`
}

func (User) TableName() string {
	return "users"
}
