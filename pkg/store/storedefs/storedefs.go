// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"src.pless.dev/pkg/props"
	"src.pless.dev/pkg/variant"
)

var (
	// ErrNoBag is returned when a bag does not exist.
	ErrNoBag = errors.New("no such bag")
	// ErrNoProp is returned by Get and Delete when a bag has no property with
	// the given name.
	ErrNoProp = errors.New("no such property")
)

// Store is an interface satisfied by the property store.
//
// A bag is created by the first Put or Save to it. Properties keep the order
// in which they were first put.
type Store interface {
	// Bags returns the names of all bags in lexical order.
	Bags() ([]string, error)

	Put(bag, name string, v variant.Variant) error
	Get(bag, name string) (variant.Variant, error)
	Delete(bag, name string) error

	// Load reads a whole bag.
	Load(bag string) (*props.Bag, error)
	// Save replaces the content of a bag with b.
	Save(bag string, b *props.Bag) error
	DropBag(bag string) error

	Close() error
}
