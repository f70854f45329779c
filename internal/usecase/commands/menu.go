package commands

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/commands/menu.go -package=commandsmock

type CreateMenuItemResult struct {
	MenuItemID uuid.UUID
}

type MenuCommands interface {
	Create(ctx context.Context, d menu.Draft) (*CreateMenuItemResult, error)
	// Replace overwrites every field (PUT).
	Replace(ctx context.Context, id uuid.UUID, d menu.Draft) error
	// Patch changes only the provided fields (PATCH).
	Patch(ctx context.Context, id uuid.UUID, c menu.Changes) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMenuCommands(uow shared.UnitOfWork, clk clock.Clock) MenuCommands {
	return &menuCommandsImpl{uow: uow, clock: clk}
}

func (uc *menuCommandsImpl) Create(ctx context.Context, d menu.Draft) (*CreateMenuItemResult, error) {
	item, err := menu.NewMenuItem(d, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.MenuItems().Create(ctx, tx.DB(), item)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create menu item")
	}
	return &CreateMenuItemResult{MenuItemID: item.ID()}, nil
}

func (uc *menuCommandsImpl) Replace(ctx context.Context, id uuid.UUID, d menu.Draft) error {
	return uc.Patch(ctx, id, menu.Changes{
		Title:     &d.Title,
		Price:     &d.Price,
		Inventory: &d.Inventory,
	})
}

func (uc *menuCommandsImpl) Patch(ctx context.Context, id uuid.UUID, c menu.Changes) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.MenuItems().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if c.Empty() {
			return nil
		}
		if err := item.Apply(c, uc.clock.Now()); err != nil {
			return err
		}
		return tx.MenuItems().Update(ctx, tx.DB(), item)
	})
	return markNotFound(err, errs.ErrMenuItemNotFound)
}

func (uc *menuCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.MenuItems().Delete(ctx, tx.DB(), id)
	})
	return markNotFound(err, errs.ErrMenuItemNotFound)
}
