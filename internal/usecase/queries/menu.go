package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type MenuReadStore interface {
	List(ctx context.Context) ([]*MenuItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type MenuQueries interface {
	List(ctx context.Context) ([]*MenuItemView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuReadStore
}

func NewMenuQueries(repo MenuReadStore) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) List(ctx context.Context) ([]*MenuItemView, error) {
	items, err := q.repo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *menuQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	item, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMenuItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return item, nil
}
