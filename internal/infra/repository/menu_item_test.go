//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/repository"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/tests/common/builder"
	repositorymock "restaurant-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create MenuItem Tests
// =============================================================================

func TestMenuItemRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockMenuItemWriteQueries, *menu.MenuItem, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: menu item created",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, item *menu.MenuItem, tx sqlc.DBTX) {
				mock.EXPECT().CreateMenuItem(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateMenuItemParams) error {
						assert.Equal(t, item.ID(), arg.ID)
						assert.Equal(t, "Greek Salad", arg.Title)
						assert.Equal(t, int32(20), arg.Inventory)
						cents, err := pgconv.NumericToCents(arg.Price)
						require.NoError(t, err)
						assert.Equal(t, int64(1250), cents)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, _ *menu.MenuItem, tx sqlc.DBTX) {
				mock.EXPECT().CreateMenuItem(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate primary key",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, _ *menu.MenuItem, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateMenuItem(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuItemWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuItemRepository(mockQueries, mockDB)

			item, err := builder.NewMenuItemBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, item, mockDB)

			actualError := repo.Create(ctx, mockDB, item)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindForUpdate MenuItem Tests
// =============================================================================

func TestMenuItemRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockMenuItemWriteQueries, uuid.UUID, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row is mapped to the aggregate",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				row := builder.NewMenuItemBuilder().BuildInfra()
				row.ID = id
				mock.EXPECT().GetMenuItemForUpdate(ctx, tx, id).Return(row, nil)
			},
		},
		{
			name: "error: no rows",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().GetMenuItemForUpdate(ctx, tx, id).Return(sqlc.MenuItems{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().GetMenuItemForUpdate(ctx, tx, id).Return(sqlc.MenuItems{}, errors.New("lock timeout"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored row breaks domain rules",
			setupMock: func(mock *repositorymock.MockMenuItemWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				row := builder.NewMenuItemBuilder().BuildInfra()
				row.ID = id
				row.Inventory = -5
				mock.EXPECT().GetMenuItemForUpdate(ctx, tx, id).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuItemWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuItemRepository(mockQueries, mockDB)

			id := uuid.New()
			tc.setupMock(mockQueries, id, mockDB)

			item, actualError := repo.FindForUpdate(ctx, mockDB, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, item)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, id, item.ID())
				assert.Equal(t, "12.50", item.Price().String())
			}
		})
	}
}

// =============================================================================
// Update / Delete MenuItem Tests
// =============================================================================

func TestMenuItemRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: menu item not found", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuItemWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuItemRepository(mockQueries, mockDB)

			item, err := builder.NewMenuItemBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateMenuItem(ctx, mockDB, gomock.Any()).Return(tc.rows, tc.err)

			actualError := repo.Update(ctx, mockDB, item)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestMenuItemRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: one row deleted", rows: 1},
		{name: "error: menu item not found", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuItemWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuItemRepository(mockQueries, mockDB)

			id := uuid.New()
			mockQueries.EXPECT().DeleteMenuItem(ctx, mockDB, id).Return(tc.rows, tc.err)

			actualError := repo.Delete(ctx, mockDB, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
