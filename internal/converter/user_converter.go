package converter

import (
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
)

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		responses = append(responses, dto.UserResponse{
			UserID:      u.ID,
			IsPatient:   u.IsPatient,
			IsClinician: u.IsClinician,
		})
	}
	return responses
}
