// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"src.pless.dev/pkg/props"
	"src.pless.dev/pkg/store/storedefs"
	"src.pless.dev/pkg/variant"
)

// TestProps tests the property methods of a Store. The store must be empty.
func TestProps(t *testing.T, store storedefs.Store) {
	bags, err := store.Bags()
	require.NoError(t, err)
	assert.Empty(t, bags)

	_, err = store.Get("settings", "x")
	assert.ErrorIs(t, err, storedefs.ErrNoBag)
	assert.ErrorIs(t, store.Delete("settings", "x"), storedefs.ErrNoBag)
	assert.ErrorIs(t, store.DropBag("settings"), storedefs.ErrNoBag)
	_, err = store.Load("settings")
	assert.ErrorIs(t, err, storedefs.ErrNoBag)

	when := time.Date(2020, 1, 2, 3, 4, 5, 6, time.UTC)
	values := []struct {
		name string
		v    variant.Variant
	}{
		{"width", variant.WithTag(variant.Int32, int64(640))},
		{"ratio", variant.FromFloat64(1.5)},
		{"price", variant.FromDecimal(decimal.RequireFromString("9.99"))},
		{"created", variant.FromTime(when)},
		{"title", variant.FromString("untitled")},
		{"parent", variant.NullString()},
		{"unset", variant.Null},
	}
	for _, p := range values {
		require.NoError(t, store.Put("settings", p.name, p.v))
	}
	for _, p := range values {
		got, err := store.Get("settings", p.name)
		require.NoError(t, err)
		assert.Equal(t, p.v.Tag(), got.Tag(), p.name)
		assert.True(t, variant.Equal(p.v, got), "%s: got %v, want %v", p.name, got, p.v)
		assert.Equal(t, p.v.IsNull(), got.IsNull(), p.name)
	}
	_, err = store.Get("settings", "nope")
	assert.ErrorIs(t, err, storedefs.ErrNoProp)

	// Overwriting keeps the position.
	require.NoError(t, store.Put("settings", "width", variant.WithTag(variant.Int32, int64(800))))
	b, err := store.Load("settings")
	require.NoError(t, err)
	assert.Equal(t, []string{"width", "ratio", "price", "created", "title", "parent", "unset"}, b.Names())
	width, _ := b.Get("width")
	assert.Equal(t, int64(800), width.AsInt())

	require.NoError(t, store.Delete("settings", "ratio"))
	assert.ErrorIs(t, store.Delete("settings", "ratio"), storedefs.ErrNoProp)

	err = store.Put("settings", "obj", variant.FromObject(struct{}{}))
	assert.ErrorIs(t, err, variant.ErrInvalidCast)

	bags, err = store.Bags()
	require.NoError(t, err)
	assert.Equal(t, []string{"settings"}, bags)

	require.NoError(t, store.DropBag("settings"))
	bags, err = store.Bags()
	require.NoError(t, err)
	assert.Empty(t, bags)
}

// TestSave tests Save and Load of a Store.
func TestSave(t *testing.T, store storedefs.Store) {
	b := props.New()
	b.Set("z", variant.FromBool(true))
	b.Set("a", variant.FromChar('x'))
	b.Set("m", variant.WithTag(variant.UInt16, uint64(65535)))
	require.NoError(t, store.Save("doc", b))

	got, err := store.Load("doc")
	require.NoError(t, err)
	assert.True(t, b.Equal(got), "loaded %v, want %v", got.Names(), b.Names())
	assert.Equal(t, b.Names(), got.Names())

	// Save replaces the previous content.
	c := props.New()
	c.Set("only", variant.Zero)
	require.NoError(t, store.Save("doc", c))
	got, err = store.Load("doc")
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got.Names())

	// A failed Save leaves the bag untouched.
	bad := props.New()
	bad.Set("ok", variant.FromInt64(1))
	bad.Set("obj", variant.FromObject(complex(1, 2)))
	assert.ErrorIs(t, store.Save("doc", bad), variant.ErrInvalidCast)
	got, err = store.Load("doc")
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got.Names())

	// Saving an empty bag creates it.
	require.NoError(t, store.Save("empty", props.New()))
	got, err = store.Load("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
