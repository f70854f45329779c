package readstore

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuViewQueries interface {
	ListMenuItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.MenuItems, error)
	GetMenuItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error)
}

type MenuReadStore struct {
	queries MenuViewQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuViewQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MenuReadStore) List(ctx context.Context) ([]*queries.MenuItemView, error) {
	rows, err := r.queries.ListMenuItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}

	items := make([]*queries.MenuItemView, 0, len(rows))
	for _, row := range rows {
		v, err := toMenuItemView(row)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	row, err := r.queries.GetMenuItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu item by id", err)
	}
	return toMenuItemView(row)
}

func toMenuItemView(row sqlc.MenuItems) (*queries.MenuItemView, error) {
	cents, err := pgconv.NumericToCents(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("menu item has unreadable price", err, infra.KindDBFailure)
	}
	return &queries.MenuItemView{
		ID:         row.ID,
		Title:      row.Title,
		Price:      menu.FormatCents(cents),
		PriceCents: cents,
		Inventory:  int(row.Inventory),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
