package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/store"
)

func TestSequenceIncrement(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		increments int64
	}{
		0: {"mybucket", "seq", 22},
		1: {"mybucket", "other", 11},
		2: {"mybucket", "seq", 18},
		3: {"yourbucket", "seq", 77},
		4: {"mybucket", "other", 248},
	}

	// track expected state across cases, sequences persist in db
	expect := make(map[string]int64)

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			_, orig, err := s.Latest(db)
			assert.Nil(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			expect[tc.bucket+"/"+tc.name] += tc.increments
			assert.Equal(t, expect[tc.bucket+"/"+tc.name], val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			_, last, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequenceLatestDoesNotMutate(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("mybucket", "seq")

	raw, err := s.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, encodeSequence(1), raw)

	for i := 0; i < 3; i++ {
		val, bz, err := s.Latest(db)
		assert.Nil(t, err)
		assert.Equal(t, int64(1), val)
		assert.Equal(t, raw, bz)
	}

	val, err := s.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), val)
}
