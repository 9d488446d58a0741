//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/handler/api"
	reqdto "furnistore/internal/handler/dto/request"
	resdto "furnistore/internal/handler/dto/response"
	"furnistore/internal/pkg/errs"
	"furnistore/internal/usecase/commands"
	"furnistore/internal/usecase/queries"
	"furnistore/tests/common/httptest"
	"furnistore/tests/common/testutil"
	commandsmock "furnistore/tests/mock/commands"
	queriesmock "furnistore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCart     *commandsmock.MockCartCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	buyerID      uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.buyerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCart, s.mockCheckout, s.mockQueries)

	// stand-in for the auth middleware
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.buyerID)
			}
			h(c)
		}
	}

	s.router.GET("/cart", authed(s.handler.Get))
	s.router.DELETE("/cart", authed(s.handler.Clear))
	s.router.POST("/cart/items", authed(s.handler.AddItem))
	s.router.DELETE("/cart/items", authed(s.handler.RemoveItem))
	s.router.PUT("/cart/discount", authed(s.handler.SetDiscount))
	s.router.POST("/cart/checkout", authed(s.handler.Checkout))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartView() *queries.CartView {
	return &queries.CartView{
		BuyerEmail: "buyer@example.com",
		Discount:   "none",
		Entries: []queries.CartEntryView{
			{Name: "Test Chair", Kind: "chair", Quantity: 2, UnitPrice: 100.0, DiscountedUnitPrice: 100.0},
		},
		Total: 236.0,
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns the priced cart", func() {
		s.mockQueries.EXPECT().ForBuyer(gomock.Any(), s.buyerID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("buyer@example.com", response.BuyerEmail)
		s.Len(response.Entries, 1)
		s.InDelta(236.0, response.Total, 1e-9)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	reqBody := reqdto.CartItemRequest{Name: "Test Chair", Kind: "chair", Quantity: 2}

	s.Run("success: adds and returns the cart", func() {
		s.mockCart.EXPECT().AddItem(gomock.Any(), s.buyerID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().ForBuyer(gomock.Any(), s.buyerID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Entries, 1)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "item not found", err: commands.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "insufficient stock", err: commands.ErrInsufficientStock, expectCode: http.StatusConflict},
			{name: "invalid quantity", err: commands.ErrInvalidQuantity, expectCode: http.StatusBadRequest},
			{name: "unknown kind", err: commands.ErrDomainValidation, expectCode: http.StatusBadRequest},
			{name: "user not found", err: commands.ErrUserNotFound, expectCode: http.StatusNotFound},
			// marked errors, as the usecase layer actually returns them
			{name: "marked item not found", err: errs.Mark(cart.ErrItemNotInCart, commands.ErrItemNotFound), expectCode: http.StatusNotFound},
			{name: "marked insufficient stock", err: errs.Mark(inventory.ErrInsufficientStock, commands.ErrInsufficientStock), expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCart.EXPECT().AddItem(gomock.Any(), s.buyerID, reqBody).
					Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing kind", mutate: testutil.Field("kind", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	reqBody := reqdto.CartItemRequest{Name: "Test Chair", Kind: "chair", Quantity: 1}

	s.Run("success", func() {
		s.mockCart.EXPECT().RemoveItem(gomock.Any(), s.buyerID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().ForBuyer(gomock.Any(), s.buyerID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items", reqBody, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: item not in cart", func() {
		s.mockCart.EXPECT().RemoveItem(gomock.Any(), s.buyerID, reqBody).
			Return(commands.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success", func() {
		s.mockCart.EXPECT().Clear(gomock.Any(), s.buyerID).Return(nil).Times(1)
		s.mockQueries.EXPECT().ForBuyer(gomock.Any(), s.buyerID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *CartHandlerTestSuite) TestSetDiscount() {
	url := "/cart/discount"
	reqBody := reqdto.SetCartDiscountRequest{Discount: "vip"}

	s.Run("success", func() {
		s.mockCart.EXPECT().SetDiscount(gomock.Any(), s.buyerID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().ForBuyer(gomock.Any(), s.buyerID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unknown strategy", func() {
		unknown := reqdto.SetCartDiscountRequest{Discount: "mystery"}
		s.mockCart.EXPECT().SetDiscount(gomock.Any(), s.buyerID, unknown).
			Return(commands.ErrInvalidDiscount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, unknown, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid discount")
	})
}

func (s *CartHandlerTestSuite) TestCheckout() {
	url := "/cart/checkout"

	s.Run("success: returns 201 with the placed order", func() {
		view := &queries.OrderView{
			ID:         uuid.New(),
			BuyerEmail: "buyer@example.com",
			Lines:      []queries.OrderLineView{{Name: "Test Chair", Quantity: 2, UnitPrice: 100.0}},
			Total:      236.0,
			Status:     "completed",
			CreatedAt:  time.Now(),
		}
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.buyerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("completed", response.Status)
		s.InDelta(236.0, response.Total, 1e-9)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "empty cart", err: commands.ErrEmptyCart, expectCode: http.StatusBadRequest},
			{name: "zero total", err: commands.ErrZeroTotal, expectCode: http.StatusBadRequest},
			{name: "insufficient stock", err: commands.ErrInsufficientStock, expectCode: http.StatusConflict},
			{name: "payment failed", err: commands.ErrPaymentFailed, expectCode: http.StatusPaymentRequired},
			{name: "user not found", err: commands.ErrUserNotFound, expectCode: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.buyerID).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})
}
