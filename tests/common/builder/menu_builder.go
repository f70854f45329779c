//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-api/internal/domain/menu"
	reqdto "restaurant-api/internal/handler/dto/request"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	Title     string
	Price     string
	Inventory int
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		Title:     "Greek Salad",
		Price:     "12.50",
		Inventory: 20,
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MenuItemBuilder) BuildDomain() (*menu.MenuItem, error) {
	return menu.NewMenuItem(b.draft(), time.Now())
}

func (b *MenuItemBuilder) BuildDraft() menu.Draft {
	return b.draft()
}

// BuildInfra panics on a price the domain rejects; use BuildDomain for invalid input.
func (b *MenuItemBuilder) BuildInfra() sqlc.MenuItems {
	price, err := menu.ParsePrice(b.Price)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	return sqlc.MenuItems{
		ID:        uuid.New(),
		Title:     b.Title,
		Price:     pgconv.CentsToNumeric(price.Cents()),
		Inventory: pgconv.IntToInt32(b.Inventory),
		CreatedAt: Timestamptz(now),
		UpdatedAt: Timestamptz(now),
	}
}

func (b *MenuItemBuilder) BuildView() *queries.MenuItemView {
	price, err := menu.ParsePrice(b.Price)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	return &queries.MenuItemView{
		ID:         uuid.New(),
		Title:      b.Title,
		Price:      price.String(),
		PriceCents: price.Cents(),
		Inventory:  b.Inventory,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *MenuItemBuilder) BuildRequestDTO() reqdto.MenuItemRequest {
	title := b.Title
	price := reqdto.Decimal(b.Price)
	inventory := b.Inventory
	return reqdto.MenuItemRequest{
		Title:     &title,
		Price:     &price,
		Inventory: &inventory,
	}
}

func (b *MenuItemBuilder) draft() menu.Draft {
	return menu.Draft{
		Title:     b.Title,
		Price:     b.Price,
		Inventory: b.Inventory,
	}
}

// Fluent builder methods
func (b *MenuItemBuilder) WithTitle(title string) *MenuItemBuilder {
	b.Title = title
	return b
}

func (b *MenuItemBuilder) WithPrice(price string) *MenuItemBuilder {
	b.Price = price
	return b
}

func (b *MenuItemBuilder) WithInventory(inventory int) *MenuItemBuilder {
	b.Inventory = inventory
	return b
}
