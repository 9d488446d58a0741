package api

import (
	"errors"
	"net/http"

	reqdto "furnistore/internal/handler/dto/request"
	resdto "furnistore/internal/handler/dto/response"
	"furnistore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
	}
}

// @Summary Add catalog item
// @Description Add an item to the inventory; quantities merge when (kind, name) already exists
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Router /admin/inventory [post]
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventoryCommands.AddItem(c.Request.Context(), req)
	if err != nil {
		h.writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Remove catalog item
// @Description Remove an item from the inventory entirely
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.RemoveItemRequest true "Item key"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory [delete]
func (h *InventoryHandler) RemoveItem(c *gin.Context) {
	var req reqdto.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inventoryCommands.RemoveItem(c.Request.Context(), req); err != nil {
		h.writeInventoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update item quantity
// @Description Set an item's absolute stock level
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateQuantityRequest true "Quantity update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/quantity [put]
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventoryCommands.UpdateQuantity(c.Request.Context(), req)
	if err != nil {
		h.writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

func (h *InventoryHandler) writeInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quantity",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
