package converter

import (
	"restaurant-api/internal/domain/menu"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/pgconv"
)

func MenuItemToCreateParams(m *menu.MenuItem) sqlc.CreateMenuItemParams {
	return sqlc.CreateMenuItemParams{
		ID:        m.ID(),
		Title:     m.Title().String(),
		Price:     pgconv.CentsToNumeric(m.Price().Cents()),
		Inventory: pgconv.IntToInt32(m.Inventory().Value()),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

func MenuItemToUpdateParams(m *menu.MenuItem) sqlc.UpdateMenuItemParams {
	return sqlc.UpdateMenuItemParams{
		ID:        m.ID(),
		Title:     m.Title().String(),
		Price:     pgconv.CentsToNumeric(m.Price().Cents()),
		Inventory: pgconv.IntToInt32(m.Inventory().Value()),
		UpdatedAt: pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

// MenuItemFromRow rebuilds the aggregate from a stored row. Rows violating
// the domain rules mean the table was written around this service.
func MenuItemFromRow(row sqlc.MenuItems) (*menu.MenuItem, error) {
	title, err := menu.NewTitle(row.Title)
	if err != nil {
		return nil, errs.Wrapf(err, "stored menu item %s has invalid title", row.ID)
	}
	cents, err := pgconv.NumericToCents(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "stored menu item %s has invalid price", row.ID)
	}
	price, err := menu.PriceFromCents(cents)
	if err != nil {
		return nil, errs.Wrapf(err, "stored menu item %s has invalid price", row.ID)
	}
	inventory, err := menu.NewInventory(int(row.Inventory))
	if err != nil {
		return nil, errs.Wrapf(err, "stored menu item %s has invalid inventory", row.ID)
	}

	return menu.ReconstructMenuItem(
		row.ID,
		title,
		price,
		inventory,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
