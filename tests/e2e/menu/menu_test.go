//go:build e2e

package menu_test

import (
	"net/http"
	"testing"

	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/tests/common/authtest"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/dbtest"
	"restaurant-api/tests/common/httptest"
	"restaurant-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const menuURL = "/menu/"

type menuSuite struct {
	e2e.SharedSuite
}

func TestMenuSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(menuSuite))
}

func itemURL(id string) string { return menuURL + id + "/" }

func (s *menuSuite) login() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "chef")
}

func (s *menuSuite) TestListIsPublic() {
	s.Run("empty menu", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, menuURL, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("items in creation order", func() {
		dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)
		dbtest.CreateTestMenuItem(s.T(), s.DB, "Bruschetta", "7.99", 10)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, menuURL, nil, "")

		var items []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 2)
		s.Equal("Greek Salad", items[0].Title)
		s.Equal("12.50", items[0].Price)
		s.Equal("Bruschetta", items[1].Title)
	})
}

func (s *menuSuite) TestCreate() {
	s.Run("authenticated create persists and is listed", func() {
		token := s.login()
		reqBody := builder.NewMenuItemBuilder().WithTitle("Lemon Dessert").WithPrice("6.5").BuildRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, menuURL, reqBody, token)

		var created resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("6.50", created.Price)
		_, err := uuid.Parse(created.ID)
		s.NoError(err)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "menu_items"))
	})

	s.Run("created item reads back by its id", func() {
		token := s.login()
		body := map[string]any{"title": "Greek Salad", "price": "12.50", "inventory": 20}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, menuURL, body, token)
		var created resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(created.ID), nil, "")
		var got resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(resdto.MenuItemResponse{ID: created.ID, Title: "Greek Salad", Price: "12.50", Inventory: 20}, got)
	})

	s.Run("anonymous create is rejected before validation", func() {
		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, menuURL, `{"nonsense":true}`, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "menu_items"))
	})

	s.Run("invalid fields persist nothing", func() {
		token := s.login()
		cases := []struct {
			name  string
			body  any
			field string
		}{
			{name: "zero price", body: builder.NewMenuItemBuilder().WithPrice("0").BuildRequestDTO(), field: "price"},
			{name: "three decimals", body: builder.NewMenuItemBuilder().WithPrice("1.999").BuildRequestDTO(), field: "price"},
			{name: "negative inventory", body: builder.NewMenuItemBuilder().WithInventory(-1).BuildRequestDTO(), field: "inventory"},
			{name: "inventory too large", body: builder.NewMenuItemBuilder().WithInventory(100000).BuildRequestDTO(), field: "inventory"},
			{name: "blank title", body: builder.NewMenuItemBuilder().WithTitle("").BuildRequestDTO(), field: "title"},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, menuURL, tc.body, token)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
			s.Contains(httptest.DecodeErrorDetail(s.T(), w), tc.field, tc.name)
		}
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "menu_items"))
	})
}

func (s *menuSuite) TestWritesRequireToken() {
	s.Run("anonymous put, patch and delete leave the row untouched", func() {
		id := dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)
		url := itemURL(id.String())
		full := builder.NewMenuItemBuilder().WithTitle("Changed").WithPrice("1.00").WithInventory(1).BuildRequestDTO()

		writes := []struct {
			method string
			body   any
		}{
			{http.MethodPut, full},
			{http.MethodPatch, map[string]any{"title": "Changed"}},
			{http.MethodDelete, nil},
		}
		for _, wr := range writes {
			w := httptest.PerformRequest(s.T(), s.Router, wr.method, url, wr.body, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "credentials were not provided")
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		var item resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &item)
		s.Equal(resdto.MenuItemResponse{ID: id.String(), Title: "Greek Salad", Price: "12.50", Inventory: 20}, item)
	})
}

func (s *menuSuite) TestRetrieve() {
	s.Run("known id", func() {
		id := dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(id.String()), nil, "")

		var item resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &item)
		s.Equal(20, item.Inventory)
	})

	s.Run("unknown and malformed ids", func() {
		for _, id := range []string{uuid.NewString(), "1"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL(id), nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
		}
	})
}

func (s *menuSuite) TestUpdateAndPatch() {
	s.Run("put replaces, patch keeps untouched fields", func() {
		token := s.login()
		id := dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)

		put := builder.NewMenuItemBuilder().WithTitle("Caesar Salad").WithPrice("11.00").WithInventory(8).BuildRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, itemURL(id.String()), put, token)
		var item resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &item)
		s.Equal("Caesar Salad", item.Title)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, itemURL(id.String()), map[string]any{"inventory": 3}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &item)
		s.Equal("Caesar Salad", item.Title)
		s.Equal("11.00", item.Price)
		s.Equal(3, item.Inventory)
	})

	s.Run("put with missing field is rejected", func() {
		token := s.login()
		id := dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, itemURL(id.String()), map[string]any{"title": "x"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
	})

	s.Run("unknown id", func() {
		token := s.login()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, itemURL(uuid.NewString()), map[string]any{"inventory": 3}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *menuSuite) TestDelete() {
	s.Run("second delete is 404", func() {
		token := s.login()
		id := dbtest.CreateTestMenuItem(s.T(), s.DB, "Greek Salad", "12.50", 20)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(id.String()), nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL(id.String()), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}
