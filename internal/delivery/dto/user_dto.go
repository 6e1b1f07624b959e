package dto

// UserResponse never carries the password hash.
type UserResponse struct {
	UserID      int  `json:"user_id"`
	IsPatient   bool `json:"is_patient"`
	IsClinician bool `json:"is_clinician"`
}

type SummaryResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalPatients    int64 `json:"total_patients"`
	TotalClinicians  int64 `json:"total_clinicians"`
	TotalQueries     int64 `json:"total_queries"`
	PendingQueries   int64 `json:"pending_queries"`
	CompletedQueries int64 `json:"completed_queries"`
}
