//go:build unit

package inventory_test

import (
	"errors"
	"testing"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
	"furnistore/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	changes []inventory.ChangeType
	items   []string
}

func (o *recordingObserver) Notify(item *catalog.Item, change inventory.ChangeType) {
	o.changes = append(o.changes, change)
	o.items = append(o.items, item.Name())
}

type panickingObserver struct{}

func (panickingObserver) Notify(*catalog.Item, inventory.ChangeType) {
	panic("observer exploded")
}

func mustItem(t *testing.T, b *builder.ItemBuilder) *catalog.Item {
	t.Helper()
	item, err := b.BuildDomain()
	require.NoError(t, err)
	return item
}

func TestInventory(t *testing.T) {
	t.Run("add and find", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))

		item, err := inv.Find("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 10, item.AvailableQuantity())

		assert.ErrorIs(t, inv.AddItem(nil), inventory.ErrNilItem)

		_, err = inv.Find("Test Chair", catalog.KindTable)
		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})

	t.Run("add merges quantity for same kind and name", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(10))))
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(7))))

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 17, qty)
		assert.Len(t, inv.Items(), 1)
	})

	t.Run("same name different kind stays separate", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithName("Nordic"))))
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithName("Nordic").AsSofa(2))))

		assert.Len(t, inv.Items(), 2)
	})

	t.Run("remove item", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))

		require.NoError(t, inv.RemoveItem("Test Chair", catalog.KindChair))
		_, err := inv.Find("Test Chair", catalog.KindChair)
		assert.ErrorIs(t, err, inventory.ErrItemNotFound)

		assert.ErrorIs(t, inv.RemoveItem("Test Chair", catalog.KindChair), inventory.ErrItemNotFound)
	})

	t.Run("update quantity", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))

		require.NoError(t, inv.UpdateQuantity("Test Chair", catalog.KindChair, 3))
		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)

		assert.ErrorIs(t, inv.UpdateQuantity("Test Chair", catalog.KindChair, -1), inventory.ErrNegativeQuantity)
		assert.ErrorIs(t, inv.UpdateQuantity("Ghost", catalog.KindChair, 3), inventory.ErrItemNotFound)
	})

	t.Run("search", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithName("Oak Chair").WithMaterial("Oak"))))
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithName("Pine Chair").WithMaterial("Pine"))))
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithName("Oak Sofa").WithMaterial("Oak").AsSofa(3))))

		assert.Len(t, inv.Search(inventory.Filter{}), 3)

		oak := "Oak"
		assert.Len(t, inv.Search(inventory.Filter{Material: &oak}), 2)

		sofa := catalog.KindSofa
		results := inv.Search(inventory.Filter{Material: &oak, Kind: &sofa})
		require.Len(t, results, 1)
		assert.Equal(t, "Oak Sofa", results[0].Name())

		missing := "Velvet"
		assert.Empty(t, inv.Search(inventory.Filter{Material: &missing}))
	})
}

func TestObservers(t *testing.T) {
	t.Run("observers see every mutation in order", func(t *testing.T) {
		inv := inventory.New()
		rec := &recordingObserver{}
		inv.RegisterObserver(rec)

		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))
		require.NoError(t, inv.UpdateQuantity("Test Chair", catalog.KindChair, 2))
		require.NoError(t, inv.RemoveItem("Test Chair", catalog.KindChair))

		assert.Equal(t, []inventory.ChangeType{
			inventory.ChangeAdded,
			inventory.ChangeUpdated,
			inventory.ChangeRemoved,
		}, rec.changes)
	})

	t.Run("removed observer stops receiving", func(t *testing.T) {
		inv := inventory.New()
		rec := &recordingObserver{}
		inv.RegisterObserver(rec)
		inv.RemoveObserver(rec)

		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))
		assert.Empty(t, rec.changes)
	})

	t.Run("panicking observer does not break dispatch or the mutation", func(t *testing.T) {
		inv := inventory.New()
		rec := &recordingObserver{}
		inv.RegisterObserver(panickingObserver{})
		inv.RegisterObserver(rec)

		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder())))

		assert.Equal(t, []inventory.ChangeType{inventory.ChangeAdded}, rec.changes)
		_, err := inv.Find("Test Chair", catalog.KindChair)
		assert.NoError(t, err)
	})
}

func TestWithin(t *testing.T) {
	t.Run("deduct inside transaction", func(t *testing.T) {
		inv := inventory.New()
		rec := &recordingObserver{}
		inv.RegisterObserver(rec)
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(5))))
		rec.changes = nil

		err := inv.Within(func(tx *inventory.Tx) error {
			available, err := tx.Available("Test Chair", catalog.KindChair)
			if err != nil {
				return err
			}
			assert.Equal(t, 5, available)
			return tx.Deduct("Test Chair", catalog.KindChair, 2)
		})
		require.NoError(t, err)

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)
		assert.Equal(t, []inventory.ChangeType{inventory.ChangeUpdated}, rec.changes)
	})

	t.Run("short stock fails without mutation", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(5))))

		err := inv.Within(func(tx *inventory.Tx) error {
			return tx.Deduct("Test Chair", catalog.KindChair, 6)
		})
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

		qty, qerr := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, qerr)
		assert.Equal(t, 5, qty)
	})

	t.Run("failed transaction rolls back and suppresses events", func(t *testing.T) {
		inv := inventory.New()
		rec := &recordingObserver{}
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(5))))
		inv.RegisterObserver(rec)

		err := inv.Within(func(tx *inventory.Tx) error {
			if err := tx.Deduct("Test Chair", catalog.KindChair, 2); err != nil {
				return err
			}
			return tx.Deduct("Ghost", catalog.KindChair, 1)
		})
		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
		assert.Empty(t, rec.changes)

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 5, qty)
	})

	t.Run("rollback restores repeated deductions of one item", func(t *testing.T) {
		inv := inventory.New()
		require.NoError(t, inv.AddItem(mustItem(t, builder.NewItemBuilder().WithQuantity(5))))

		boom := errors.New("gateway offline")
		err := inv.Within(func(tx *inventory.Tx) error {
			if err := tx.Deduct("Test Chair", catalog.KindChair, 2); err != nil {
				return err
			}
			if err := tx.Deduct("Test Chair", catalog.KindChair, 1); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		qty, err := inv.AvailableQuantity("Test Chair", catalog.KindChair)
		require.NoError(t, err)
		assert.Equal(t, 5, qty)
	})
}
