package entity

import "time"

// Patient represents a patient medical profile. Email and aadhar number are
// nullable so profiles created through the short signup form (which collects
// neither aadhar nor most medical fields) do not collide on empty values.
type Patient struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"patient_id"`
	UserID       *int      `gorm:"uniqueIndex" json:"user_id,omitempty"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DOB          time.Time `gorm:"type:date;not null" json:"dob"`
	Gender       string    `gorm:"type:varchar(10);not null" json:"gender"`
	Height       int       `json:"height"`
	Weight       int       `json:"weight"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	AadharNumber *string   `gorm:"type:varchar(20);uniqueIndex" json:"aadhar_number,omitempty"`

	// Medical conditions
	Diabetes           bool   `gorm:"default:false" json:"diabetes"`
	Hypertension       bool   `gorm:"default:false" json:"hypertension"`
	HeartDisease       bool   `gorm:"default:false" json:"heart_disease"`
	Asthma             bool   `gorm:"default:false" json:"asthma"`
	Stroke             bool   `gorm:"default:false" json:"stroke"`
	OtherConditions    string `gorm:"type:text" json:"other_conditions"`
	CurrentMedications string `gorm:"type:text" json:"current_medications"`

	// Allergies
	NoAllergies            bool   `gorm:"default:false" json:"no_allergies"`
	MedicationAllergies    string `gorm:"type:text" json:"medication_allergies"`
	FoodAllergies          string `gorm:"type:text" json:"food_allergies"`
	EnvironmentalAllergies string `gorm:"type:text" json:"environmental_allergies"`

	// Family history
	FamilyDiabetes     string `gorm:"type:text" json:"family_diabetes"`
	FamilyHeartDisease string `gorm:"type:text" json:"family_heart_disease"`
	FamilyStroke       string `gorm:"type:text" json:"family_stroke"`
	FamilyCancer       string `gorm:"type:text" json:"family_cancer"`
	FamilyMentalHealth string `gorm:"type:text" json:"family_mental_health"`

	// Lifestyle
	SmokingStatus     string `gorm:"type:varchar(20)" json:"smoking_status"`
	AlcoholUse        string `gorm:"type:varchar(20)" json:"alcohol_use"`
	ExerciseFrequency string `gorm:"type:varchar(20)" json:"exercise_frequency"`
	Diet              string `gorm:"type:varchar(20)" json:"diet"`

	// Mental health
	Anxiety           bool   `gorm:"default:false" json:"anxiety"`
	Depression        bool   `gorm:"default:false" json:"depression"`
	PTSD              bool   `gorm:"default:false" json:"ptsd"`
	ADHD              bool   `gorm:"default:false" json:"adhd"`
	Bipolar           bool   `gorm:"default:false" json:"bipolar"`
	OtherMentalHealth string `gorm:"type:text" json:"other_mental_health"`

	AdditionalInfo string `gorm:"type:text" json:"additional_info"`

	// Relationships
	User    *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Chats   []Chat  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"chats,omitempty"`
	Queries []Query `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"queries,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
