package api

import (
	"net/http"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/handler/httperr"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary List menu items
// @Description List every menu item in creation order
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 500 {object} httperr.Response
// @Router /menu/ [get]
func (h *MenuHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMenuItemViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /menu/ [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusCreated, result.MenuItemID)
}

// @Summary Get menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 404 {object} httperr.Response
// @Router /menu/{id}/ [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortNotFound(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Replace menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id}/ [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortNotFound(c, err)
		return
	}
	var req reqdto.MenuItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	if err = h.cmds.Replace(c.Request.Context(), id, req.ToDraft()); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Partially update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.PatchMenuItemRequest true "Fields to change"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id}/ [patch]
func (h *MenuHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortNotFound(c, err)
		return
	}
	var req reqdto.PatchMenuItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	if err = req.Validate(); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	if err = h.cmds.Patch(c.Request.Context(), id, req.ToChanges()); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete menu item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id}/ [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortNotFound(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMenuItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
