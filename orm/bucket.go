package orm

import (
	"fmt"
	"regexp"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well
// as references to secondary indexes and sequences.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
// Bucket is a prefixed subspace of the DB
// proto defines the default Model, all elements of this type
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes []namedIndex
}

// namedIndex joins an index with the name it was registered under. Indexes
// are updated in registration order so that writes stay deterministic.
type namedIndex struct {
	Index
	publicName string
}

var _ alms.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element
func (b Bucket) Get(db alms.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (raw Model bytes) and
// reconstructs the data this Bucket would return.
//
// Used internally as part of Get.
// It is exposed mainly as a test helper, but can work for
// any code that wants to parse
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrState, "cannot parse %T: %v", obj.Value(), err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write the model, it must be of the same type as proto
func (b Bucket) Save(db alms.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid object")
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	if err := b.updateIndexes(db, model.Key(), model); err != nil {
		return err
	}

	// now save this one
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db alms.KVStore, key []byte) error {
	if err := b.updateIndexes(db, key, nil); err != nil {
		return err
	}

	// now save this one
	dbkey := b.DBKey(key)
	return db.Delete(dbkey)
}

func (b Bucket) updateIndexes(db alms.KVStore, key []byte, model Object) error {
	// update all indexes
	if len(b.indexes) > 0 {
		prev, err := b.Get(db, key)
		if err != nil {
			return err
		}
		for _, idx := range b.indexes {
			if err := idx.Update(db, prev, model); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sequence returns a Sequence by name
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// WithIndex returns a copy of this bucket with given index,
// panics if it an index with that name is already registered.
//
// Designed to be chained.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	return b.WithMultiKeyIndex(name, asMultiKeyIndexer(indexer), unique)
}

// WithMultiKeyIndex returns a copy of this bucket with given index,
// panics if it an index with that name is already registered.
//
// Designed to be chained.
func (b Bucket) WithMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool) Bucket {
	for _, idx := range b.indexes {
		if idx.publicName == name {
			panic(fmt.Sprintf("Index %s registered twice", name))
		}
	}

	add := NewMultiKeyIndex(b.name+"_"+name, indexer, unique, b.DBKey)
	// copy the slice so chained derivations do not share state
	indexes := make([]namedIndex, len(b.indexes)+1)
	copy(indexes, b.indexes)
	indexes[len(b.indexes)] = namedIndex{Index: add, publicName: name}
	b.indexes = indexes
	return b
}

// GetIndexed queries the named index for the given key
func (b Bucket) GetIndexed(db alms.ReadOnlyKVStore, name string, key []byte) ([]Object, error) {
	idx, err := b.index(name)
	if err != nil {
		return nil, err
	}
	refs, err := idx.GetAt(db, key)
	if err != nil {
		return nil, err
	}
	return b.readRefs(db, refs)
}

// GetIndexedLike returns all objects that have the same index values
// as the given pattern object.
func (b Bucket) GetIndexedLike(db alms.ReadOnlyKVStore, name string, pattern Object) ([]Object, error) {
	idx, err := b.index(name)
	if err != nil {
		return nil, err
	}
	refs, err := idx.GetLike(db, pattern)
	if err != nil {
		return nil, err
	}
	return b.readRefs(db, refs)
}

func (b Bucket) index(name string) (Index, error) {
	for _, idx := range b.indexes {
		if idx.publicName == name {
			return idx.Index, nil
		}
	}
	return Index{}, errors.Wrap(ErrInvalidIndex, name)
}

func (b Bucket) readRefs(db alms.ReadOnlyKVStore, refs [][]byte) ([]Object, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	var err error
	objs := make([]Object, len(refs))
	for i, key := range refs {
		objs[i], err = b.Get(db, key)
		if err != nil {
			return nil, err
		}
	}
	return objs, nil
}

// Register registers this Bucket and all indexes.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data
func (b Bucket) Register(name string, r alms.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
	for _, idx := range b.indexes {
		r.Register(root+"/"+idx.publicName, idx)
	}
}

// Query handles queries from the QueryRouter
func (b Bucket) Query(db alms.ReadOnlyKVStore, mod string, data []byte) ([]alms.Model, error) {
	switch mod {
	case alms.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []alms.Model{{Key: key, Value: value}}, nil
	case alms.PrefixQueryMod:
		prefix := b.DBKey(data)
		return queryPrefix(db, prefix)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
