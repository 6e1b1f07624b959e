package dto

import (
	"strconv"
	"strings"
)

// FlexInt accepts both a JSON number and a numeric string; clients send ids
// and numeric form values in either shape. Non-numeric input decodes to zero
// rather than failing, which downstream treats as absent.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

type LoginRequest struct {
	Email    string  `json:"email" validate:"omitempty"`
	UserID   FlexInt `json:"userId"`
	Password string  `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	IsPatient   bool   `json:"is_patient,omitempty"`
	IsClinician bool   `json:"is_clinician,omitempty"`
	PatientID   int    `json:"patient_id,omitempty"`
	ClinicianID int    `json:"clinician_id,omitempty"`
	FullName    string `json:"full_name"`
	UserID      int    `json:"user_id"`
}
