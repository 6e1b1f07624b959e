package converter

import (
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
)

func QueryToResponse(query *entity.Query) *dto.QueryResponse {
	if query == nil {
		return nil
	}

	return &dto.QueryResponse{
		QueryID:     query.ID,
		ChatID:      query.ChatID,
		PatientID:   query.PatientID,
		ClinicianID: query.ClinicianID,
		QueryText:   query.QueryText,
		Response:    query.Response,
		QueryStatus: query.QueryStatus,
		CreatedAt:   query.CreatedAt,
	}
}

func QueriesToResponses(queries []entity.Query) []dto.QueryResponse {
	responses := make([]dto.QueryResponse, 0, len(queries))
	for i := range queries {
		responses = append(responses, *QueryToResponse(&queries[i]))
	}
	return responses
}

func QueriesToPatientResponses(queries []entity.Query) []dto.PatientQueryResponse {
	responses := make([]dto.PatientQueryResponse, 0, len(queries))
	for i := range queries {
		q := &queries[i]
		responses = append(responses, dto.PatientQueryResponse{
			QueryID:     q.ID,
			ChatID:      q.ChatID,
			QueryText:   q.QueryText,
			Response:    q.Response,
			QueryStatus: q.QueryStatus,
			CreatedAt:   q.CreatedAt,
		})
	}
	return responses
}

func QueriesToClinicianResponses(queries []entity.Query) []dto.ClinicianQueryResponse {
	responses := make([]dto.ClinicianQueryResponse, 0, len(queries))
	for i := range queries {
		q := &queries[i]
		responses = append(responses, dto.ClinicianQueryResponse{
			QueryID:     q.ID,
			ChatID:      q.ChatID,
			PatientID:   q.PatientID,
			QueryText:   q.QueryText,
			Response:    q.Response,
			QueryStatus: q.QueryStatus,
			CreatedAt:   q.CreatedAt,
		})
	}
	return responses
}
