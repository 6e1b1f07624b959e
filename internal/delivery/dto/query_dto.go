package dto

import "time"

type AIQueryRequest struct {
	QueryText string `json:"query_text" validate:"required"`
	PatientID *int   `json:"patient_id"`
	ChatID    *int   `json:"chat_id"`
}

type AIQueryResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	QueryID  int    `json:"query_id"`
	ChatID   int    `json:"chat_id"`
}

type CreateQueryRequest struct {
	ChatID      *int    `json:"chat_id"`
	PatientID   *int    `json:"patient_id" validate:"required"`
	ClinicianID *int    `json:"clinician_id"`
	QueryText   string  `json:"query_text" validate:"required"`
	Response    *string `json:"response"`
	QueryStatus string  `json:"query_status"`
}

type CreateQueryResponse struct {
	Message string `json:"message"`
	QueryID int    `json:"query_id"`
	ChatID  int    `json:"chat_id"`
}

type QueryResponse struct {
	QueryID     int       `json:"query_id"`
	ChatID      *int      `json:"chat_id"`
	PatientID   *int      `json:"patient_id"`
	ClinicianID *int      `json:"clinician_id"`
	QueryText   string    `json:"query_text"`
	Response    *string   `json:"response"`
	QueryStatus string    `json:"query_status"`
	CreatedAt   time.Time `json:"created_at"`
}

// PatientQueryResponse omits patient_id for the per-patient listing, where
// the parent is already in the path.
type PatientQueryResponse struct {
	QueryID     int       `json:"query_id"`
	ChatID      *int      `json:"chat_id"`
	QueryText   string    `json:"query_text"`
	Response    *string   `json:"response"`
	QueryStatus string    `json:"query_status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClinicianQueryResponse struct {
	QueryID     int       `json:"query_id"`
	ChatID      *int      `json:"chat_id"`
	PatientID   *int      `json:"patient_id"`
	QueryText   string    `json:"query_text"`
	Response    *string   `json:"response"`
	QueryStatus string    `json:"query_status"`
	CreatedAt   time.Time `json:"created_at"`
}
