package usecase

import (
	"io"
	"testing"

	domainRepo "caresync-backend/internal/domain/repository"
	"caresync-backend/internal/infrastructure/database"
	"caresync-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store with the full schema and
// foreign keys enforced. Pool size one keeps every statement on the single
// connection that owns the in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testDeps bundles the store and repositories the usecases under test are
// wired with.
type testDeps struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      domainRepo.UserRepository
	patientRepo   domainRepo.PatientRepository
	clinicianRepo domainRepo.ClinicianRepository
	chatRepo      domainRepo.ChatRepository
	queryRepo     domainRepo.QueryRepository
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	return &testDeps{
		db:            newTestDB(t),
		log:           newTestLogger(),
		userRepo:      repository.NewUserRepository(),
		patientRepo:   repository.NewPatientRepository(),
		clinicianRepo: repository.NewClinicianRepository(),
		chatRepo:      repository.NewChatRepository(),
		queryRepo:     repository.NewQueryRepository(),
	}
}
