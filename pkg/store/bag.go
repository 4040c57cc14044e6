package store

import (
	"encoding/binary"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"
	"src.pless.dev/pkg/props"
	. "src.pless.dev/pkg/store/storedefs"
	"src.pless.dev/pkg/variant"
)

// Each bag is a nested bucket of bucketBags. A property is stored under its
// name; the value is the sequence number of its first Put, big endian,
// followed by the binary encoding of the variant.
const (
	bucketBags = "bags"
	bucketMeta = "meta"

	keySchema     = "schema"
	schemaVersion = 1
)

func init() {
	initDB["initialize bag table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketBags))
		return err
	}
	initDB["check schema version"] = func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketMeta))
		if err != nil {
			return err
		}
		if v := b.Get([]byte(keySchema)); v != nil {
			if got := binary.BigEndian.Uint64(v); got != schemaVersion {
				return fmt.Errorf("unsupported schema version %d", got)
			}
			return nil
		}
		return b.Put([]byte(keySchema), marshalSeq(schemaVersion))
	}
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func marshalProp(seq uint64, v variant.Variant) ([]byte, error) {
	return variant.AppendBinary(marshalSeq(seq), v)
}

func unmarshalProp(data []byte) (uint64, variant.Variant, error) {
	if len(data) < 8 {
		return 0, variant.Variant{}, fmt.Errorf("%w: short record", variant.ErrBadEncoding)
	}
	v, n, err := variant.DecodeBinary(data[8:])
	if err != nil {
		return 0, variant.Variant{}, err
	}
	if n != len(data)-8 {
		return 0, variant.Variant{}, fmt.Errorf("%w: trailing bytes", variant.ErrBadEncoding)
	}
	return binary.BigEndian.Uint64(data), v, nil
}

func bagBucket(tx *bolt.Tx, bag string) *bolt.Bucket {
	return tx.Bucket([]byte(bucketBags)).Bucket([]byte(bag))
}

// Bags returns the names of all bags.
func (s *dbStore) Bags() ([]string, error) {
	var bags []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketBags)).ForEach(func(k, v []byte) error {
			if v == nil {
				bags = append(bags, string(k))
			}
			return nil
		})
	})
	return bags, err
}

// Put sets a property, creating the bag if needed.
func (s *dbStore) Put(bag, name string, v variant.Variant) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketBags)).CreateBucketIfNotExists([]byte(bag))
		if err != nil {
			return err
		}
		return putProp(b, name, v)
	})
}

func putProp(b *bolt.Bucket, name string, v variant.Variant) error {
	var seq uint64
	if old := b.Get([]byte(name)); len(old) >= 8 {
		seq = binary.BigEndian.Uint64(old)
	} else {
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
	}
	data, err := marshalProp(seq, v)
	if err != nil {
		return fmt.Errorf("property %s: %w", name, err)
	}
	return b.Put([]byte(name), data)
}

// Get gets a property.
func (s *dbStore) Get(bag, name string) (variant.Variant, error) {
	var v variant.Variant
	err := s.db.View(func(tx *bolt.Tx) error {
		b := bagBucket(tx, bag)
		if b == nil {
			return ErrNoBag
		}
		data := b.Get([]byte(name))
		if data == nil {
			return ErrNoProp
		}
		var err error
		_, v, err = unmarshalProp(data)
		return err
	})
	return v, err
}

// Delete deletes a property. The bag stays even when it becomes empty.
func (s *dbStore) Delete(bag, name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := bagBucket(tx, bag)
		if b == nil {
			return ErrNoBag
		}
		if b.Get([]byte(name)) == nil {
			return ErrNoProp
		}
		return b.Delete([]byte(name))
	})
}

// Load reads all properties of a bag in the order they were first put.
func (s *dbStore) Load(bag string) (*props.Bag, error) {
	type entry struct {
		seq  uint64
		name string
		v    variant.Variant
	}
	var entries []entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := bagBucket(tx, bag)
		if b == nil {
			return ErrNoBag
		}
		return b.ForEach(func(k, data []byte) error {
			seq, v, err := unmarshalProp(data)
			if err != nil {
				logger.Printf("bad record %s/%s: %v", bag, k, err)
				return fmt.Errorf("property %s: %w", k, err)
			}
			entries = append(entries, entry{seq, string(k), v})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	pb := props.New()
	for _, e := range entries {
		pb.Set(e.name, e.v)
	}
	return pb, nil
}

// Save replaces the content of a bag. Nothing is written if any value cannot
// be encoded.
func (s *dbStore) Save(bag string, pb *props.Bag) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bags := tx.Bucket([]byte(bucketBags))
		if bags.Bucket([]byte(bag)) != nil {
			if err := bags.DeleteBucket([]byte(bag)); err != nil {
				return err
			}
		}
		b, err := bags.CreateBucket([]byte(bag))
		if err != nil {
			return err
		}
		for _, name := range pb.Names() {
			v, _ := pb.Get(name)
			if err := putProp(b, name, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// DropBag deletes a bag with all its properties.
func (s *dbStore) DropBag(bag string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(bucketBags)).DeleteBucket([]byte(bag))
		if err == bolt.ErrBucketNotFound {
			return ErrNoBag
		}
		return err
	})
}
