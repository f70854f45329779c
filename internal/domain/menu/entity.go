package menu

import (
	"time"

	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type MenuItem struct {
	id        uuid.UUID
	title     Title
	price     Price
	inventory Inventory
	createdAt time.Time
	updatedAt time.Time
}

// Draft is the raw, unvalidated shape of a menu item as received from a client.
type Draft struct {
	Title     string
	Price     string
	Inventory int
}

// Changes describes a partial update; nil fields keep their current value.
type Changes struct {
	Title     *string
	Price     *string
	Inventory *int
}

func (c Changes) Empty() bool {
	return !patch.Provided(c.Title != nil, c.Price != nil, c.Inventory != nil)
}

func NewMenuItem(d Draft, now time.Time) (*MenuItem, error) {
	title, price, inventory, err := validate(d)
	if err != nil {
		return nil, err
	}
	return &MenuItem{
		id:        uuid.New(),
		title:     title,
		price:     price,
		inventory: inventory,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMenuItem(id uuid.UUID, title Title, price Price, inventory Inventory, createdAt, updatedAt time.Time) *MenuItem {
	return &MenuItem{
		id:        id,
		title:     title,
		price:     price,
		inventory: inventory,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply validates the merged result of the current state and c. The item is
// left untouched when any field is rejected.
func (m *MenuItem) Apply(c Changes, now time.Time) error {
	d := Draft{
		Title:     patch.Coalesce(c.Title, m.title.String()),
		Price:     patch.Coalesce(c.Price, m.price.String()),
		Inventory: patch.Coalesce(c.Inventory, m.inventory.Value()),
	}
	title, price, inventory, err := validate(d)
	if err != nil {
		return err
	}
	m.title = title
	m.price = price
	m.inventory = inventory
	m.updatedAt = now
	return nil
}

func validate(d Draft) (Title, Price, Inventory, error) {
	fe := errs.NewFieldErrors()

	title, err := NewTitle(d.Title)
	fe.Add("title", err)
	price, err := ParsePrice(d.Price)
	fe.Add("price", err)
	inventory, err := NewInventory(d.Inventory)
	fe.Add("inventory", err)

	if err := fe.Err(); err != nil {
		return Title{}, Price{}, Inventory{}, err
	}
	return title, price, inventory, nil
}

func (m *MenuItem) ID() uuid.UUID        { return m.id }
func (m *MenuItem) Title() Title         { return m.title }
func (m *MenuItem) Price() Price         { return m.price }
func (m *MenuItem) Inventory() Inventory { return m.inventory }
func (m *MenuItem) CreatedAt() time.Time { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time { return m.updatedAt }
