package response

import "restaurant-api/internal/usecase/queries"

type MenuItemResponse struct {
	ID        string `json:"id" example:"0b9a4d64-8f3f-4a4e-9d0c-6c1f1f6b2f41"`
	Title     string `json:"title" example:"Greek Salad"`
	Price     string `json:"price" example:"12.50"`
	Inventory int    `json:"inventory" example:"20"`
}

func FromMenuItemView(v *queries.MenuItemView) (*MenuItemResponse, error) {
	return copyView[MenuItemResponse](v)
}

func FromMenuItemViews(vs []*queries.MenuItemView) ([]*MenuItemResponse, error) {
	return copyViews[MenuItemResponse](vs)
}
