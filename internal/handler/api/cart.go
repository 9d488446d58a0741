package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "furnistore/internal/handler/dto/request"
	resdto "furnistore/internal/handler/dto/response"
	"furnistore/internal/handler/middleware"
	"furnistore/internal/usecase/commands"
	"furnistore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands     commands.CartCommands
	checkoutCommands commands.CheckoutCommands
	cartQueries      queries.CartQueries
}

func NewCartHandler(
	cartCommands commands.CartCommands,
	checkoutCommands commands.CheckoutCommands,
	cartQueries queries.CartQueries,
) *CartHandler {
	return &CartHandler{
		cartCommands:     cartCommands,
		checkoutCommands: checkoutCommands,
		cartQueries:      cartQueries,
	}
}

// @Summary Get cart
// @Description Get the current buyer's cart with priced entries and total
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.cartQueries.ForBuyer(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add item to cart
// @Description Add a quantity of a catalog item to the buyer's cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CartItemRequest true "Cart item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	h.mutate(c, h.cartCommands.AddItem)
}

// @Summary Remove item from cart
// @Description Remove a quantity of an item from the buyer's cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CartItemRequest true "Cart item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.mutate(c, h.cartCommands.RemoveItem)
}

// @Summary Set cart discount
// @Description Apply a cart-wide discount strategy
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SetCartDiscountRequest true "Discount"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/discount [put]
func (h *CartHandler) SetDiscount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.SetCartDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cartCommands.SetDiscount(c.Request.Context(), userID, req); err != nil {
		h.writeCartError(c, err)
		return
	}

	h.writeCart(c, userID)
}

// @Summary Clear cart
// @Description Drop every entry from the buyer's cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), userID); err != nil {
		h.writeCartError(c, err)
		return
	}

	h.writeCart(c, userID)
}

// @Summary Checkout
// @Description Convert the buyer's cart into a completed order
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.checkoutCommands.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrZeroTotal):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Order total is zero",
			})
		case errors.Is(err, commands.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient stock",
			})
		case errors.Is(err, commands.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment failed",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

func (h *CartHandler) mutate(c *gin.Context, op func(ctx context.Context, userID uuid.UUID, req reqdto.CartItemRequest) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := op(c.Request.Context(), userID, req); err != nil {
		h.writeCartError(c, err)
		return
	}

	h.writeCart(c, userID)
}

func (h *CartHandler) writeCart(c *gin.Context, userID uuid.UUID) {
	view, err := h.cartQueries.ForBuyer(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock",
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quantity",
		})
	case errors.Is(err, commands.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid discount",
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
