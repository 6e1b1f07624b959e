package entity

import "time"

// Query status values. Statuses are free-form strings at the schema level;
// these constants cover the values the API reads back for the summary.
const (
	QueryStatusPending   = "Pending"
	QueryStatusCompleted = "Completed"
)

// Query is a single submitted question plus its AI- or clinician-provided
// response and lifecycle status.
type Query struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"query_id"`
	ChatID      *int      `gorm:"index" json:"chat_id,omitempty"`
	PatientID   *int      `gorm:"index" json:"patient_id,omitempty"`
	ClinicianID *int      `gorm:"index" json:"clinician_id,omitempty"`
	QueryText   string    `gorm:"type:text;not null" json:"query_text"`
	Response    *string   `gorm:"type:text" json:"response,omitempty"`
	QueryStatus string    `gorm:"type:varchar(20);default:'Pending'" json:"query_status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Chat      *Chat      `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"chat,omitempty"`
	Patient   *Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Clinician *Clinician `gorm:"foreignKey:ClinicianID;constraint:OnDelete:SET NULL" json:"clinician,omitempty"`
}

func (Query) TableName() string {
	return "queries"
}
