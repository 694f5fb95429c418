package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/technotes-api/internal/database"
	"github.com/yukikurage/technotes-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	noteRepo    repository.NoteRepository
	userService *UserService
	noteService *NoteService
	authService *AuthService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), "")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, zap.NewNop()))

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	return serviceTestEnv{
		db:          db,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		userService: NewUserService(userRepo, noteRepo, bcrypt.MinCost),
		noteService: NewNoteService(noteRepo, userRepo),
		authService: NewAuthService(userRepo),
	}
}

func boolPtr(v bool) *bool {
	return &v
}
