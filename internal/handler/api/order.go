package api

import (
	"errors"
	"net/http"

	"furnistore/internal/domain/user"
	resdto "furnistore/internal/handler/dto/response"
	"furnistore/internal/handler/middleware"
	"furnistore/internal/usecase/commands"
	"furnistore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	checkoutCommands commands.CheckoutCommands
	orderQueries     queries.OrderQueries
	users            commands.UserRegistry
}

func NewOrderHandler(
	checkoutCommands commands.CheckoutCommands,
	orderQueries queries.OrderQueries,
	users commands.UserRegistry,
) *OrderHandler {
	return &OrderHandler{
		checkoutCommands: checkoutCommands,
		orderQueries:     orderQueries,
		users:            users,
	}
}

// @Summary Order history
// @Description List the authenticated buyer's orders, oldest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) History(c *gin.Context) {
	buyer, ok := h.requester(c)
	if !ok {
		return
	}

	views := h.orderQueries.History(c.Request.Context(), buyer.Email().Value())
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary Get order
// @Description Get one order; buyers see only their own, admins see any
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	buyer, ok := h.requester(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderQueries.Get(c.Request.Context(), orderID, buyer)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List all orders
// @Description List every order in the system (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 403 {object} map[string]string
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	views := h.orderQueries.All(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary Mark order delivered
// @Description Transition a completed order to delivered (admin only)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/deliver [post]
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.checkoutCommands.MarkDelivered(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot be delivered in its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) requester(c *gin.Context) (*user.User, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return nil, false
	}

	u, err := h.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return nil, false
	}
	return u, true
}
