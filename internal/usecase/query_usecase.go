package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caresync-backend/internal/converter"
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
	"caresync-backend/internal/domain/repository"
	"caresync-backend/internal/infrastructure/ai"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrQueryNotFound = errors.New("query not found")

type QueryUsecase interface {
	SubmitAIQuery(ctx context.Context, req *dto.AIQueryRequest) (*dto.AIQueryResponse, error)
	CreateQuery(ctx context.Context, req *dto.CreateQueryRequest) (*dto.CreateQueryResponse, error)
	GetQuery(ctx context.Context, id int) (*dto.QueryResponse, error)
	ListQueries(ctx context.Context) ([]dto.QueryResponse, error)
	ListQueriesByPatient(ctx context.Context, patientID int) ([]dto.PatientQueryResponse, error)
	ListQueriesByClinician(ctx context.Context, clinicianID int) ([]dto.ClinicianQueryResponse, error)
}

type queryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	generator     ai.Generator
	queryRepo     repository.QueryRepository
	chatRepo      repository.ChatRepository
	patientRepo   repository.PatientRepository
	clinicianRepo repository.ClinicianRepository
}

func NewQueryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	generator ai.Generator,
	queryRepo repository.QueryRepository,
	chatRepo repository.ChatRepository,
	patientRepo repository.PatientRepository,
	clinicianRepo repository.ClinicianRepository,
) QueryUsecase {
	return &queryUsecase{
		db:            db,
		log:           log,
		generator:     generator,
		queryRepo:     queryRepo,
		chatRepo:      chatRepo,
		patientRepo:   patientRepo,
		clinicianRepo: clinicianRepo,
	}
}

// SubmitAIQuery generates a response for the query and persists it. The
// generator always returns text, so the query row is written with a response
// attached even when the provider is degraded; status stays "Pending" until
// a clinician reviews it.
func (u *queryUsecase) SubmitAIQuery(ctx context.Context, req *dto.AIQueryRequest) (*dto.AIQueryResponse, error) {
	db := u.db.WithContext(ctx)

	patientContext := ""
	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(db, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient for AI context: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}

		// Year-only age approximation, matching what the assistant
		// prompt has always carried.
		age := time.Now().Year() - patient.DOB.Year()
		patientContext = fmt.Sprintf("Patient: %s, %s, Age: %d.", patient.FullName, patient.Gender, age)
	}

	responseText := u.generator.Generate(ctx, req.QueryText, patientContext)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chatID, err := u.resolveChatID(tx, req.ChatID, req.PatientID, nil)
	if err != nil {
		u.log.Warnf("Failed to create chat: %+v", err)
		return nil, err
	}

	query := &entity.Query{
		ChatID:      &chatID,
		PatientID:   req.PatientID,
		QueryText:   req.QueryText,
		Response:    &responseText,
		QueryStatus: entity.QueryStatusPending,
	}

	if err := u.queryRepo.Create(tx, query); err != nil {
		u.log.Warnf("Failed to create query: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AIQueryResponse{
		Success:  true,
		Response: responseText,
		QueryID:  query.ID,
		ChatID:   chatID,
	}, nil
}

// CreateQuery persists a query directly. A missing chat_id materializes a
// chat row the same way the AI path does, so every query belongs to a real
// chat.
func (u *queryUsecase) CreateQuery(ctx context.Context, req *dto.CreateQueryRequest) (*dto.CreateQueryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chatID, err := u.resolveChatID(tx, req.ChatID, req.PatientID, req.ClinicianID)
	if err != nil {
		if isForeignKeyError(err) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create chat: %+v", err)
		return nil, err
	}

	status := req.QueryStatus
	if status == "" {
		status = entity.QueryStatusPending
	}

	query := &entity.Query{
		ChatID:      &chatID,
		PatientID:   req.PatientID,
		ClinicianID: req.ClinicianID,
		QueryText:   req.QueryText,
		Response:    req.Response,
		QueryStatus: status,
	}

	if err := u.queryRepo.Create(tx, query); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create query: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateQueryResponse{
		Message: "Query created successfully",
		QueryID: query.ID,
		ChatID:  chatID,
	}, nil
}

func (u *queryUsecase) GetQuery(ctx context.Context, id int) (*dto.QueryResponse, error) {
	query, err := u.queryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find query: %+v", err)
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}

	return converter.QueryToResponse(query), nil
}

func (u *queryUsecase) ListQueries(ctx context.Context) ([]dto.QueryResponse, error) {
	queries, err := u.queryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list queries: %+v", err)
		return nil, err
	}

	return converter.QueriesToResponses(queries), nil
}

// ListQueriesByPatient verifies the patient exists before filtering, so an
// unknown id is a not-found rather than an empty list.
func (u *queryUsecase) ListQueriesByPatient(ctx context.Context, patientID int) ([]dto.PatientQueryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	queries, err := u.queryRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient queries: %+v", err)
		return nil, err
	}

	return converter.QueriesToPatientResponses(queries), nil
}

func (u *queryUsecase) ListQueriesByClinician(ctx context.Context, clinicianID int) ([]dto.ClinicianQueryResponse, error) {
	db := u.db.WithContext(ctx)

	clinician, err := u.clinicianRepo.FindByID(db, clinicianID)
	if err != nil {
		u.log.Warnf("Failed to find clinician: %+v", err)
		return nil, err
	}
	if clinician == nil {
		return nil, ErrClinicianNotFound
	}

	queries, err := u.queryRepo.FindByClinicianID(db, clinicianID)
	if err != nil {
		u.log.Warnf("Failed to list clinician queries: %+v", err)
		return nil, err
	}

	return converter.QueriesToClinicianResponses(queries), nil
}

func (u *queryUsecase) resolveChatID(tx *gorm.DB, chatID, patientID, clinicianID *int) (int, error) {
	if chatID != nil {
		return *chatID, nil
	}

	chat := &entity.Chat{
		PatientID:   patientID,
		ClinicianID: clinicianID,
	}
	if err := u.chatRepo.Create(tx, chat); err != nil {
		return 0, err
	}
	return chat.ID, nil
}
