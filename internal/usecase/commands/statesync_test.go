//go:build unit

package commands_test

import (
	"context"
	"testing"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"
	"furnistore/internal/infra/memory"
	"furnistore/internal/usecase/commands"
	"furnistore/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	inv    *inventory.Inventory
	users  *memory.UserRegistry
	carts  *memory.CartRegistry
	orders *memory.OrderRegistry
	sync   *commands.StateSync
}

func newWorld(orderArchive *fakeOrderArchive, cartArchive *fakeCartArchive, catalogStore *fakeCatalogStore, userArchive *fakeUserArchive) *world {
	w := &world{}
	w.inv = inventory.New()
	w.users = memory.NewUserRegistry()
	w.carts = memory.NewCartRegistry(w.inv, nil)
	w.orders = memory.NewOrderRegistry()
	w.sync = commands.NewStateSync(w.inv, w.users, w.carts, w.orders,
		userArchive, orderArchive, cartArchive, catalogStore)
	return w
}

type fakeUserArchive struct {
	saved   []*user.User
	deleted []string
}

func (a *fakeUserArchive) Save(_ context.Context, u *user.User) error {
	a.saved = append(a.saved, u)
	return nil
}

func (a *fakeUserArchive) Delete(_ context.Context, email string) error {
	a.deleted = append(a.deleted, email)
	return nil
}

func (a *fakeUserArchive) LoadAll(context.Context) ([]*user.User, error) {
	return a.saved, nil
}

func TestStateSyncRoundTrip(t *testing.T) {
	orderArchive := &fakeOrderArchive{}
	cartArchive := &fakeCartArchive{}
	catalogStore := &fakeCatalogStore{}
	userArchive := &fakeUserArchive{}

	// first process: build up live state and flush it
	first := newWorld(orderArchive, cartArchive, catalogStore, userArchive)

	item, err := builder.NewItemBuilder().WithQuantity(10).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, first.inv.AddItem(item))

	buyer, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, first.users.Add(buyer))

	placed, err := order.New(buyer.Email().Value(), buyer.Address(), buyer.PaymentMethod(),
		[]order.Line{{Name: item.Name(), Quantity: 1, UnitPrice: 100.0}}, 118.0)
	require.NoError(t, err)
	require.NoError(t, placed.Complete())
	first.orders.Add(placed)

	require.NoError(t, first.carts.GetOrCreate(buyer).AddItem(item, 2))

	require.NoError(t, first.sync.Flush(context.Background()))

	// second process: load from the same archives
	second := newWorld(orderArchive, cartArchive, catalogStore, userArchive)
	require.NoError(t, second.sync.Load(context.Background()))

	restoredItem, err := second.inv.Find(item.Name(), catalog.KindChair)
	require.NoError(t, err)
	assert.Equal(t, 10, restoredItem.AvailableQuantity())

	restoredBuyer, err := second.users.FindByEmail(buyer.Email().Value())
	require.NoError(t, err)
	assert.Equal(t, buyer.ID(), restoredBuyer.ID())

	restoredOrder, err := second.orders.FindByID(placed.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, restoredOrder.Status())
	if diff := cmp.Diff(placed.Lines(), restoredOrder.Lines()); diff != "" {
		t.Errorf("restored order lines mismatch (-want +got):\n%s", diff)
	}

	// order history is re-attached to the restored buyer
	require.Len(t, restoredBuyer.Orders(), 1)

	// cart lines are re-resolved against the restored inventory
	restoredCart := second.carts.GetOrCreate(restoredBuyer)
	entries := restoredCart.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, item.Name(), entries[0].Item.Name())
}

func TestStateSyncLoadSkipsOrphanedCartLines(t *testing.T) {
	orderArchive := &fakeOrderArchive{}
	catalogStore := &fakeCatalogStore{}
	userArchive := &fakeUserArchive{}

	buyer, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	userArchive.saved = append(userArchive.saved, buyer)

	// snapshot references an item that no longer exists in the catalog
	cartArchive := &fakeCartArchive{snapshots: map[string][]commands.CartLine{
		buyer.Email().Value(): {{Name: "Gone Chair", Kind: catalog.KindChair, Quantity: 1}},
	}}

	w := newWorld(orderArchive, cartArchive, catalogStore, userArchive)
	require.NoError(t, w.sync.Load(context.Background()))

	restoredBuyer, err := w.users.FindByEmail(buyer.Email().Value())
	require.NoError(t, err)
	assert.Equal(t, 0, w.carts.GetOrCreate(restoredBuyer).Len())
}
