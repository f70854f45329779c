package request

import (
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/pkg/ptr"
)

// MenuItemRequest is used by POST and PUT; every field must be present.
type MenuItemRequest struct {
	Title     *string  `json:"title" binding:"required" example:"Greek Salad"`
	Price     *Decimal `json:"price" binding:"required" swaggertype:"string" example:"12.50"`
	Inventory *int     `json:"inventory" binding:"required" example:"20"`
}

// PatchMenuItemRequest is used by PATCH. Omitted fields stay unchanged;
// an explicit null is rejected by Validate.
type PatchMenuItemRequest struct {
	Title     *string  `json:"title" example:"Greek Salad"`
	Price     *Decimal `json:"price" swaggertype:"string" example:"12.50"`
	Inventory *int     `json:"inventory" example:"20"`

	nulls []string
}

func (r *PatchMenuItemRequest) UnmarshalJSON(b []byte) error {
	type fields PatchMenuItemRequest
	var f fields
	nulls, err := decodePartial(b, &f)
	if err != nil {
		return err
	}
	*r = PatchMenuItemRequest(f)
	r.nulls = nulls
	return nil
}

func (r *PatchMenuItemRequest) Validate() error {
	return nullFieldsError(r.nulls)
}

func (r *MenuItemRequest) ToDraft() menu.Draft {
	return menu.Draft{
		Title:     ptr.Deref(r.Title),
		Price:     ptr.Deref(r.Price.ptr()),
		Inventory: ptr.Deref(r.Inventory),
	}
}

func (r *PatchMenuItemRequest) ToChanges() menu.Changes {
	return menu.Changes{
		Title:     r.Title,
		Price:     r.Price.ptr(),
		Inventory: r.Inventory,
	}
}
