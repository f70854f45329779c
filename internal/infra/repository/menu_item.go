package repository

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/repository/converter"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=menu_item.go -destination=../../../tests/mock/repository/menu_item.go -package=repositorymock

type MenuItemWriteQueries interface {
	CreateMenuItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMenuItemParams) error
	GetMenuItemForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error)
	UpdateMenuItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMenuItemParams) (int64, error)
	DeleteMenuItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type MenuItemRepository struct {
	queries MenuItemWriteQueries
	db      sqlc.DBTX
}

func NewMenuItemRepository(queries MenuItemWriteQueries, db sqlc.DBTX) *MenuItemRepository {
	return &MenuItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MenuItemRepository) Create(ctx context.Context, tx sqlc.DBTX, item *menu.MenuItem) error {
	if err := r.queries.CreateMenuItem(ctx, tx, converter.MenuItemToCreateParams(item)); err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.MenuItem, error) {
	row, err := r.queries.GetMenuItemForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock menu item", err)
	}

	item, err := converter.MenuItemFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load menu item", err, infra.KindDBFailure)
	}
	return item, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, tx sqlc.DBTX, item *menu.MenuItem) error {
	rows, err := r.queries.UpdateMenuItem(ctx, tx, converter.MenuItemToUpdateParams(item))
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteMenuItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}
