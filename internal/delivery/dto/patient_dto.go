package dto

// CreatePatientRequest is the canonical patient registration payload. The
// form-encoded signup endpoint converts its camelCase fields into this shape
// before handing off to the usecase.
type CreatePatientRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	DOB          string `json:"dob" validate:"required"` // YYYY-MM-DD
	Gender       string `json:"gender" validate:"required"`
	Height       int    `json:"height"`
	Weight       int    `json:"weight"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required"`
	AadharNumber string `json:"aadhar_number"`

	Diabetes           bool   `json:"diabetes"`
	Hypertension       bool   `json:"hypertension"`
	HeartDisease       bool   `json:"heart_disease"`
	Asthma             bool   `json:"asthma"`
	Stroke             bool   `json:"stroke"`
	OtherConditions    string `json:"other_conditions"`
	CurrentMedications string `json:"current_medications"`

	NoAllergies            bool   `json:"no_allergies"`
	MedicationAllergies    string `json:"medication_allergies"`
	FoodAllergies          string `json:"food_allergies"`
	EnvironmentalAllergies string `json:"environmental_allergies"`

	FamilyDiabetes     string `json:"family_diabetes"`
	FamilyHeartDisease string `json:"family_heart_disease"`
	FamilyStroke       string `json:"family_stroke"`
	FamilyCancer       string `json:"family_cancer"`
	FamilyMentalHealth string `json:"family_mental_health"`

	SmokingStatus     string `json:"smoking_status"`
	AlcoholUse        string `json:"alcohol_use"`
	ExerciseFrequency string `json:"exercise_frequency"`
	Diet              string `json:"diet"`

	Anxiety           bool   `json:"anxiety"`
	Depression        bool   `json:"depression"`
	PTSD              bool   `json:"ptsd"`
	ADHD              bool   `json:"adhd"`
	Bipolar           bool   `json:"bipolar"`
	OtherMentalHealth string `json:"other_mental_health"`

	AdditionalInfo string `json:"additional_info"`
}

// SignupPatientResponse is returned by the form-encoded signup endpoint.
type SignupPatientResponse struct {
	Success   bool `json:"success"`
	PatientID int  `json:"patient_id"`
}

type CreatePatientResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PatientID int    `json:"patient_id"`
	UserID    int    `json:"user_id"`
}

// PatientResponse carries the full profile for single-patient reads.
type PatientResponse struct {
	PatientID    int     `json:"patient_id"`
	FullName     string  `json:"full_name"`
	DOB          string  `json:"dob"`
	Gender       string  `json:"gender"`
	Height       int     `json:"height"`
	Weight       int     `json:"weight"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email"`
	AadharNumber *string `json:"aadhar_number"`

	Diabetes           bool   `json:"diabetes"`
	Hypertension       bool   `json:"hypertension"`
	HeartDisease       bool   `json:"heart_disease"`
	Asthma             bool   `json:"asthma"`
	Stroke             bool   `json:"stroke"`
	OtherConditions    string `json:"other_conditions"`
	CurrentMedications string `json:"current_medications"`

	NoAllergies            bool   `json:"no_allergies"`
	MedicationAllergies    string `json:"medication_allergies"`
	FoodAllergies          string `json:"food_allergies"`
	EnvironmentalAllergies string `json:"environmental_allergies"`

	FamilyDiabetes     string `json:"family_diabetes"`
	FamilyHeartDisease string `json:"family_heart_disease"`
	FamilyStroke       string `json:"family_stroke"`
	FamilyCancer       string `json:"family_cancer"`
	FamilyMentalHealth string `json:"family_mental_health"`

	SmokingStatus     string `json:"smoking_status"`
	AlcoholUse        string `json:"alcohol_use"`
	ExerciseFrequency string `json:"exercise_frequency"`
	Diet              string `json:"diet"`

	Anxiety           bool   `json:"anxiety"`
	Depression        bool   `json:"depression"`
	PTSD              bool   `json:"ptsd"`
	ADHD              bool   `json:"adhd"`
	Bipolar           bool   `json:"bipolar"`
	OtherMentalHealth string `json:"other_mental_health"`

	AdditionalInfo string `json:"additional_info"`
}

// PatientSummaryResponse is the trimmed row used by the list endpoint.
type PatientSummaryResponse struct {
	PatientID int     `json:"patient_id"`
	UserID    *int    `json:"user_id"`
	FullName  string  `json:"full_name"`
	Email     *string `json:"email"`
	DOB       string  `json:"dob"`
	Gender    string  `json:"gender"`
	Height    int     `json:"height"`
	Weight    int     `json:"weight"`
	Phone     string  `json:"phone"`
}

type PatientListResponse struct {
	Patients []PatientSummaryResponse `json:"patients"`
}
