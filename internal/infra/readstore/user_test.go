//go:build unit

package readstore

import (
	"context"
	"testing"

	"restaurant-api/internal/infra"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindCredentialsByUsername(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithUsername("retired").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		username   string
		mockReturn sqlc.Users
		mockError  error
		wantActive bool
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			username:   testUser.Username,
			mockReturn: testUser,
			wantActive: true,
		},
		{
			name:       "success - inactive user (for validation)",
			username:   inactiveUser.Username,
			mockReturn: inactiveUser,
			wantActive: false,
		},
		{
			name:       "user not found",
			username:   "nobody",
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			username:   testUser.Username,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByUsername", mock.Anything, mock.Anything, tt.username).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			creds, err := readStore.FindCredentialsByUsername(context.Background(), tt.username)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, creds)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, creds.ID)
				assert.Equal(t, tt.username, creds.Username)
				assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
				assert.Equal(t, tt.wantActive, creds.IsActive)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	noEmail := builder.NewUserBuilder().WithEmail("").BuildInfra()

	toRow := func(u sqlc.Users) sqlc.FindUserByIDRow {
		return sqlc.FindUserByIDRow{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			IsActive:  u.IsActive,
			LastLogin: u.LastLogin,
			CreatedAt: u.CreatedAt,
		}
	}

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.FindUserByIDRow
		mockError  error
		wantEmail  string
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			id:         testUser.ID,
			mockReturn: toRow(testUser),
			wantEmail:  testUser.Email.String,
		},
		{
			name:       "success - null email",
			id:         noEmail.ID,
			mockReturn: toRow(noEmail),
			wantEmail:  "",
		},
		{
			name:       "user not found",
			id:         uuid.New(),
			mockReturn: sqlc.FindUserByIDRow{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         testUser.ID,
			mockReturn: sqlc.FindUserByIDRow{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.id)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, view.ID)
				assert.Equal(t, tt.wantEmail, view.Email)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
