package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"src.pless.dev/pkg/store"
	"src.pless.dev/pkg/store/storetest"
	"src.pless.dev/pkg/variant"
)

func TestProps(t *testing.T) {
	storetest.TestProps(t, store.MustGetTempStore(t))
}

func TestSave(t *testing.T) {
	storetest.TestSave(t, store.MustGetTempStore(t))
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.db")
	st, err := store.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Put("b", "pi", variant.FromFloat64(3.14159)))
	require.NoError(t, st.Close())

	st, err = store.NewStore(path)
	require.NoError(t, err)
	defer st.Close()
	v, err := st.Get("b", "pi")
	require.NoError(t, err)
	assert.Equal(t, 3.14159, v.AsDouble())
}

func TestCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.db")
	st, err := store.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Put("b", "x", variant.FromInt64(1)))
	require.NoError(t, st.Close())

	db, err := bolt.Open(path, 0644, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("bags")).Bucket([]byte("b")).Put([]byte("x"), []byte{0, 1})
	}))
	st, err = store.NewStoreFromDB(db)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Get("b", "x")
	assert.ErrorIs(t, err, variant.ErrBadEncoding)
	_, err = st.Load("b")
	assert.ErrorIs(t, err, variant.ErrBadEncoding)
}

func TestSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.db")
	db, err := bolt.Open(path, 0644, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte("meta"))
		if err != nil {
			return err
		}
		return b.Put([]byte("schema"), []byte{0, 0, 0, 0, 0, 0, 0, 99})
	}))
	_, err = store.NewStoreFromDB(db)
	assert.ErrorContains(t, err, "unsupported schema version 99")
}
