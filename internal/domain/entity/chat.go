package entity

import "time"

// Chat groups query rows under one patient and optionally one clinician.
// Every query-creating path materializes a chat row; its integer id is the
// canonical chat identifier on the wire.
type Chat struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"chat_id"`
	PatientID   *int      `gorm:"index" json:"patient_id,omitempty"`
	ClinicianID *int      `gorm:"index" json:"clinician_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient   *Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Clinician *Clinician `gorm:"foreignKey:ClinicianID;constraint:OnDelete:SET NULL" json:"clinician,omitempty"`
	Queries   []Query    `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"queries,omitempty"`
}

func (Chat) TableName() string {
	return "chats"
}
