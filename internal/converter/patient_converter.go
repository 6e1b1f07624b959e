package converter

import (
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse maps the full profile for single-patient reads.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID:    patient.ID,
		FullName:     patient.FullName,
		DOB:          patient.DOB.Format(dateLayout),
		Gender:       patient.Gender,
		Height:       patient.Height,
		Weight:       patient.Weight,
		Phone:        patient.Phone,
		Email:        patient.Email,
		AadharNumber: patient.AadharNumber,

		Diabetes:           patient.Diabetes,
		Hypertension:       patient.Hypertension,
		HeartDisease:       patient.HeartDisease,
		Asthma:             patient.Asthma,
		Stroke:             patient.Stroke,
		OtherConditions:    patient.OtherConditions,
		CurrentMedications: patient.CurrentMedications,

		NoAllergies:            patient.NoAllergies,
		MedicationAllergies:    patient.MedicationAllergies,
		FoodAllergies:          patient.FoodAllergies,
		EnvironmentalAllergies: patient.EnvironmentalAllergies,

		FamilyDiabetes:     patient.FamilyDiabetes,
		FamilyHeartDisease: patient.FamilyHeartDisease,
		FamilyStroke:       patient.FamilyStroke,
		FamilyCancer:       patient.FamilyCancer,
		FamilyMentalHealth: patient.FamilyMentalHealth,

		SmokingStatus:     patient.SmokingStatus,
		AlcoholUse:        patient.AlcoholUse,
		ExerciseFrequency: patient.ExerciseFrequency,
		Diet:              patient.Diet,

		Anxiety:           patient.Anxiety,
		Depression:        patient.Depression,
		PTSD:              patient.PTSD,
		ADHD:              patient.ADHD,
		Bipolar:           patient.Bipolar,
		OtherMentalHealth: patient.OtherMentalHealth,

		AdditionalInfo: patient.AdditionalInfo,
	}
}

func PatientToSummaryResponse(patient *entity.Patient) dto.PatientSummaryResponse {
	return dto.PatientSummaryResponse{
		PatientID: patient.ID,
		UserID:    patient.UserID,
		FullName:  patient.FullName,
		Email:     patient.Email,
		DOB:       patient.DOB.Format(dateLayout),
		Gender:    patient.Gender,
		Height:    patient.Height,
		Weight:    patient.Weight,
		Phone:     patient.Phone,
	}
}

func PatientsToSummaryResponses(patients []entity.Patient) []dto.PatientSummaryResponse {
	responses := make([]dto.PatientSummaryResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToSummaryResponse(&patients[i]))
	}
	return responses
}
