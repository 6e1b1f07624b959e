package converter

import (
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
)

func ClinicianToResponse(clinician *entity.Clinician) *dto.ClinicianResponse {
	if clinician == nil {
		return nil
	}

	return &dto.ClinicianResponse{
		ClinicianID:         clinician.ID,
		UserID:              clinician.UserID,
		FullName:            clinician.FullName,
		Email:               clinician.Email,
		Phone:               clinician.Phone,
		MedicalRegNumber:    clinician.MedicalRegNumber,
		Specialization:      clinician.Specialization,
		YearsOfExperience:   clinician.YearsOfExperience,
		AffiliatedHospitals: clinician.AffiliatedHospitals,
		AadharNumber:        clinician.AadharNumber,
	}
}

func CliniciansToSummaryResponses(clinicians []entity.Clinician) []dto.ClinicianSummaryResponse {
	responses := make([]dto.ClinicianSummaryResponse, 0, len(clinicians))
	for i := range clinicians {
		c := &clinicians[i]
		responses = append(responses, dto.ClinicianSummaryResponse{
			ClinicianID:         c.ID,
			UserID:              c.UserID,
			FullName:            c.FullName,
			Email:               c.Email,
			Specialization:      c.Specialization,
			YearsOfExperience:   c.YearsOfExperience,
			AffiliatedHospitals: c.AffiliatedHospitals,
		})
	}
	return responses
}
