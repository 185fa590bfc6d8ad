package orm

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// RegisterQuery registers a raw database query handler under the root
// path. It lets clients read any value by its raw database key, without
// knowledge of the bucket that owns it.
func RegisterQuery(qr alms.QueryRouter) {
	qr.Register("/", rawQueryHandler{})
}

type rawQueryHandler struct{}

var _ alms.QueryHandler = rawQueryHandler{}

func (rawQueryHandler) Query(db alms.ReadOnlyKVStore, mod string, data []byte) ([]alms.Model, error) {
	switch mod {
	case alms.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []alms.Model{{Key: data, Value: value}}, nil
	case alms.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// queryPrefix returns all models with keys that begin with a given prefix,
// in ascending key order.
func queryPrefix(db alms.ReadOnlyKVStore, prefix []byte) ([]alms.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return consumeIterator(itr)
}

// consumeIterator reads all remaining models into a slice and releases the
// iterator.
func consumeIterator(itr alms.Iterator) ([]alms.Model, error) {
	defer itr.Release()

	var out []alms.Model
	for {
		key, value, err := itr.Next()
		switch {
		case err == nil:
			out = append(out, alms.Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return out, nil
		default:
			return nil, err
		}
	}
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte? then we need to carry it
	for l > 0 && end[l] == 0 {
		l--
		end[l]++
	}
	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
