//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/ptr"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		var saved *menu.MenuItem
		m.menu.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, item *menu.MenuItem) error {
				saved = item
				return nil
			})

		result, err := uc.Create(ctx, builder.NewMenuItemBuilder().BuildDraft())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), result.MenuItemID)
		assert.Equal(t, "Greek Salad", saved.Title().String())
		assert.Equal(t, int64(1250), saved.Price().Cents())
		assert.Equal(t, 20, saved.Inventory().Value())
		assert.Equal(t, fixedNow, saved.CreatedAt())
	})

	t.Run("invalid price never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		for _, price := range []string{"0", "-3.00", "0.00"} {
			_, err := uc.Create(ctx, builder.NewMenuItemBuilder().WithPrice(price).BuildDraft())

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDomainValidation)
			assert.ErrorIs(t, err, menu.ErrPriceNotPositive)
		}
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		dbErr := infra.WrapRepoErr("failed to create menu item", errors.New("connection lost"))
		m.menu.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)

		_, err := uc.Create(ctx, builder.NewMenuItemBuilder().BuildDraft())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestMenuCommands_Patch(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	existing := func(t *testing.T) *menu.MenuItem {
		item, err := builder.NewMenuItemBuilder().BuildDomain()
		require.NoError(t, err)
		return item
	}

	t.Run("applies only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		item := existing(t)
		m.menu.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(item, nil)
		m.menu.EXPECT().Update(gomock.Any(), gomock.Any(), item).Return(nil)

		err := uc.Patch(ctx, id, menu.Changes{Inventory: ptr.To(3)})

		require.NoError(t, err)
		assert.Equal(t, 3, item.Inventory().Value())
		assert.Equal(t, "Greek Salad", item.Title().String())
		assert.Equal(t, fixedNow, item.UpdatedAt())
	})

	t.Run("empty patch reads but does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		m.menu.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(existing(t), nil)

		require.NoError(t, uc.Patch(ctx, id, menu.Changes{}))
	})

	t.Run("invalid change is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		item := existing(t)
		m.menu.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(item, nil)

		err := uc.Patch(ctx, id, menu.Changes{Price: ptr.To("-1")})

		require.Error(t, err)
		assert.ErrorIs(t, err, menu.ErrPriceNotPositive)
		assert.Equal(t, int64(1250), item.Price().Cents())
	})

	t.Run("unknown id is marked not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		m.menu.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound))

		err := uc.Patch(ctx, id, menu.Changes{Inventory: ptr.To(1)})

		assert.True(t, errs.Is(err, errs.ErrMenuItemNotFound))
	})
}

func TestMenuCommands_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newUoWMocks(ctrl)
	uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))
	id := uuid.New()

	item, err := builder.NewMenuItemBuilder().BuildDomain()
	require.NoError(t, err)
	m.menu.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(item, nil)
	m.menu.EXPECT().Update(gomock.Any(), gomock.Any(), item).Return(nil)

	draft := builder.NewMenuItemBuilder().WithTitle("Bruschetta").WithPrice("7").WithInventory(0).BuildDraft()
	require.NoError(t, uc.Replace(context.Background(), id, draft))

	assert.Equal(t, "Bruschetta", item.Title().String())
	assert.Equal(t, "7.00", item.Price().String())
	assert.Equal(t, 0, item.Inventory().Value())
}

func TestMenuCommands_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		m.menu.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

		require.NoError(t, uc.Delete(ctx, id))
	})

	t.Run("no row removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		uc := commands.NewMenuCommands(m.uow, clock.NewMockClock(fixedNow))

		m.menu.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound))

		err := uc.Delete(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrMenuItemNotFound))
	})
}
