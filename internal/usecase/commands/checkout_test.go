//go:build unit

package commands_test

import (
	"context"
	"testing"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/infra/memory"
	"furnistore/internal/pkg/config"
	"furnistore/internal/usecase/commands"
	"furnistore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// In-memory archive fakes. The commands treat archive failures as
// best-effort, so these only record what was saved.

type fakeOrderArchive struct {
	saved []*order.Order
}

func (a *fakeOrderArchive) Save(_ context.Context, o *order.Order) error {
	a.saved = append(a.saved, o)
	return nil
}

func (a *fakeOrderArchive) LoadAll(context.Context) ([]*order.Order, error) {
	return a.saved, nil
}

type fakeCartArchive struct {
	snapshots map[string][]commands.CartLine
}

func (a *fakeCartArchive) Save(_ context.Context, buyerEmail string, lines []commands.CartLine) error {
	if a.snapshots == nil {
		a.snapshots = make(map[string][]commands.CartLine)
	}
	a.snapshots[buyerEmail] = lines
	return nil
}

func (a *fakeCartArchive) LoadAll(context.Context) (map[string][]commands.CartLine, error) {
	return a.snapshots, nil
}

type fakeCatalogStore struct {
	saved []*catalog.Item
}

func (s *fakeCatalogStore) SaveAll(_ context.Context, items []*catalog.Item) error {
	s.saved = items
	return nil
}

func (s *fakeCatalogStore) LoadAll(context.Context) ([]*catalog.Item, error) {
	return s.saved, nil
}

type stubGateway struct {
	approve bool
	calls   int
}

func (g *stubGateway) ProcessPayment(context.Context, *user.User, float64) bool {
	g.calls++
	return g.approve
}

type CheckoutCommandsSuite struct {
	suite.Suite

	inv          *inventory.Inventory
	users        *memory.UserRegistry
	carts        *memory.CartRegistry
	orders       *memory.OrderRegistry
	gateway      *stubGateway
	orderArchive *fakeOrderArchive
	cartArchive  *fakeCartArchive
	catalogStore *fakeCatalogStore

	cartCommands     commands.CartCommands
	checkoutCommands commands.CheckoutCommands

	buyer *user.User
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsSuite))
}

func (s *CheckoutCommandsSuite) SetupTest() {
	s.inv = inventory.New()
	s.users = memory.NewUserRegistry()
	s.carts = memory.NewCartRegistry(s.inv, nil)
	s.orders = memory.NewOrderRegistry()
	s.gateway = &stubGateway{approve: true}
	s.orderArchive = &fakeOrderArchive{}
	s.cartArchive = &fakeCartArchive{}
	s.catalogStore = &fakeCatalogStore{}

	s.cartCommands = commands.NewCartCommands(s.users, s.carts, s.inv, s.cartArchive)
	s.checkoutCommands = commands.NewCheckoutCommands(
		s.users, s.carts, s.orders, s.gateway,
		s.orderArchive, s.cartArchive, s.catalogStore,
		s.inv, config.PricingConfig{TaxPercent: 18, LowStockThreshold: 5},
	)

	buyer, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.users.Add(buyer))
	s.buyer = buyer

	item, err := builder.NewItemBuilder().WithPrice(100.0).WithQuantity(5).BuildDomain()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.inv.AddItem(item))
}

func (s *CheckoutCommandsSuite) addToCart(quantity int) {
	err := s.cartCommands.AddItem(context.Background(), s.buyer.ID(), reqdto.CartItemRequest{
		Name:     "Test Chair",
		Kind:     "chair",
		Quantity: quantity,
	})
	require.NoError(s.T(), err)
}

func (s *CheckoutCommandsSuite) TestCheckoutSuccess() {
	s.addToCart(2)

	view, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.Require().NoError(err)
	s.Require().NotNil(view)

	s.Equal("completed", view.Status)
	s.Equal(s.buyer.Email().Value(), view.BuyerEmail)
	s.InDelta(236.0, view.Total, 1e-9)

	qty, err := s.inv.AvailableQuantity("Test Chair", catalog.KindChair)
	s.Require().NoError(err)
	s.Equal(3, qty)

	s.Len(s.orders.All(), 1)
	s.Len(s.buyer.Orders(), 1)
	s.Equal(1, s.gateway.calls)

	// the archive sees the order, an emptied cart, and deducted stock
	s.Len(s.orderArchive.saved, 1)
	s.Empty(s.cartArchive.snapshots[s.buyer.Email().Value()])
	s.Require().Len(s.catalogStore.saved, 1)
	s.Equal(3, s.catalogStore.saved[0].AvailableQuantity())
}

func (s *CheckoutCommandsSuite) TestCheckoutUnknownBuyer() {
	_, err := s.checkoutCommands.Checkout(context.Background(), uuid.New())
	s.ErrorIs(err, commands.ErrUserNotFound)
}

func (s *CheckoutCommandsSuite) TestCheckoutEmptyCart() {
	_, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.ErrorIs(err, commands.ErrEmptyCart)
	s.Empty(s.orders.All())
}

func (s *CheckoutCommandsSuite) TestCheckoutPaymentDeclined() {
	s.gateway.approve = false
	s.addToCart(2)

	_, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.ErrorIs(err, commands.ErrPaymentFailed)

	qty, qerr := s.inv.AvailableQuantity("Test Chair", catalog.KindChair)
	s.Require().NoError(qerr)
	s.Equal(5, qty)
	s.Empty(s.orders.All())
	s.Empty(s.orderArchive.saved)
}

func (s *CheckoutCommandsSuite) TestCheckoutInsufficientStock() {
	s.addToCart(4)
	s.Require().NoError(s.inv.UpdateQuantity("Test Chair", catalog.KindChair, 1))

	_, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.ErrorIs(err, commands.ErrInsufficientStock)
}

func (s *CheckoutCommandsSuite) TestMarkDelivered() {
	s.addToCart(1)
	placed, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.Require().NoError(err)

	view, err := s.checkoutCommands.MarkDelivered(context.Background(), placed.ID)
	s.Require().NoError(err)
	s.Equal("delivered", view.Status)

	// order is already delivered
	_, err = s.checkoutCommands.MarkDelivered(context.Background(), placed.ID)
	s.ErrorIs(err, commands.ErrInvalidTransition)
}

func (s *CheckoutCommandsSuite) TestMarkDeliveredUnknownOrder() {
	_, err := s.checkoutCommands.MarkDelivered(context.Background(), uuid.New())
	s.ErrorIs(err, commands.ErrOrderNotFound)
}

func (s *CheckoutCommandsSuite) TestCartErrorsAreMarked() {
	cases := []struct {
		name  string
		req   reqdto.CartItemRequest
		errIs error
	}{
		{
			name:  "unknown item",
			req:   reqdto.CartItemRequest{Name: "Ghost", Kind: "chair", Quantity: 1},
			errIs: commands.ErrItemNotFound,
		},
		{
			name:  "unknown kind",
			req:   reqdto.CartItemRequest{Name: "Test Chair", Kind: "lamp", Quantity: 1},
			errIs: commands.ErrDomainValidation,
		},
		{
			name:  "over stock",
			req:   reqdto.CartItemRequest{Name: "Test Chair", Kind: "chair", Quantity: 6},
			errIs: commands.ErrInsufficientStock,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.cartCommands.AddItem(context.Background(), s.buyer.ID(), tc.req)
			s.ErrorIs(err, tc.errIs)
		})
	}
}

func (s *CheckoutCommandsSuite) TestRemoveItemNotInCart() {
	err := s.cartCommands.RemoveItem(context.Background(), s.buyer.ID(), reqdto.CartItemRequest{
		Name: "Test Chair", Kind: "chair", Quantity: 1,
	})
	s.ErrorIs(err, commands.ErrItemNotFound)
}

func (s *CheckoutCommandsSuite) TestSetDiscountChangesTotal() {
	s.addToCart(1)
	err := s.cartCommands.SetDiscount(context.Background(), s.buyer.ID(), reqdto.SetCartDiscountRequest{Discount: "vip"})
	s.Require().NoError(err)

	view, err := s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.Require().NoError(err)
	s.InDelta(94.40, view.Total, 1e-9)
}

func (s *CheckoutCommandsSuite) TestSetDiscountInvalid() {
	err := s.cartCommands.SetDiscount(context.Background(), s.buyer.ID(), reqdto.SetCartDiscountRequest{Discount: "mystery"})
	s.ErrorIs(err, commands.ErrInvalidDiscount)
}

func (s *CheckoutCommandsSuite) TestCartMutationsArchiveSnapshots() {
	s.addToCart(2)

	lines := s.cartArchive.snapshots[s.buyer.Email().Value()]
	s.Require().Len(lines, 1)
	s.Equal(commands.CartLine{Name: "Test Chair", Kind: catalog.KindChair, Quantity: 2}, lines[0])
}

func (s *CheckoutCommandsSuite) TestClearEmptiesCartAndArchive() {
	s.addToCart(2)

	err := s.cartCommands.Clear(context.Background(), s.buyer.ID())
	s.Require().NoError(err)

	s.Empty(s.cartArchive.snapshots[s.buyer.Email().Value()])

	_, err = s.checkoutCommands.Checkout(context.Background(), s.buyer.ID())
	s.ErrorIs(err, commands.ErrEmptyCart)
}

func (s *CheckoutCommandsSuite) TestClearUnknownBuyer() {
	err := s.cartCommands.Clear(context.Background(), uuid.New())
	s.ErrorIs(err, commands.ErrUserNotFound)
}
