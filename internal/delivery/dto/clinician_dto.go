package dto

// CreateClinicianRequest is the canonical clinician registration payload.
// Beyond the identity fields nothing is rejected: absent values default to
// empty string or zero and the database constraints have the final word.
type CreateClinicianRequest struct {
	FullName            string `json:"full_name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone"`
	Password            string `json:"password" validate:"required"`
	MedicalRegNumber    string `json:"medical_reg_number"`
	Specialization      string `json:"specialization"`
	YearsOfExperience   int    `json:"years_of_experience"`
	AffiliatedHospitals string `json:"affiliated_hospitals"`
	AadharNumber        string `json:"aadhar_number"`
}

// SignupClinicianRequest is the camelCase compatibility shape used by the
// clinician signup page; first and last name arrive separately.
type SignupClinicianRequest struct {
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               string  `json:"phone"`
	Password            string  `json:"password" validate:"required"`
	MedicalRegNumber    string  `json:"medicalRegNumber"`
	Specialization      string  `json:"specialization"`
	YearsOfExperience   FlexInt `json:"yearsOfExperience"`
	AffiliatedHospitals string  `json:"affiliatedHospitals"`
	AadharNumber        string  `json:"aadharNumber"`
}

type SignupClinicianResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ClinicianID int    `json:"clinician_id"`
}

type CreateClinicianResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ClinicianID int    `json:"clinician_id"`
	UserID      int    `json:"user_id"`
}

type ClinicianResponse struct {
	ClinicianID         int    `json:"clinician_id"`
	UserID              *int   `json:"user_id"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	MedicalRegNumber    string `json:"medical_reg_number"`
	Specialization      string `json:"specialization"`
	YearsOfExperience   int    `json:"years_of_experience"`
	AffiliatedHospitals string `json:"affiliated_hospitals"`
	AadharNumber        string `json:"aadhar_number"`
}

// ClinicianSummaryResponse is the trimmed row used by the list endpoint.
type ClinicianSummaryResponse struct {
	ClinicianID         int    `json:"clinician_id"`
	UserID              *int   `json:"user_id"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Specialization      string `json:"specialization"`
	YearsOfExperience   int    `json:"years_of_experience"`
	AffiliatedHospitals string `json:"affiliated_hospitals"`
}
