package migration

import (
	"encoding/json"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/store"
)

func TestSchemaMigratingHandler(t *testing.T) {
	const thisPkgName = "testpkg"

	reg := newRegister()

	reg.MustRegister(1, &MyMsg{}, NoModification)
	reg.MustRegister(2, &MyMsg{}, func(db alms.ReadOnlyKVStore, m Migratable) error {
		msg := m.(*MyMsg)
		msg.Content += " m2"
		return msg.err
	})
	reg.MustRegister(3, &MyMsg{}, func(db alms.ReadOnlyKVStore, m Migratable) error {
		panic("not implemented")
	})

	db := store.MemStore()

	schema := NewSchemaBucket()
	if _, err := schema.Create(db, &Schema{Metadata: &alms.Metadata{Schema: 1}, Pkg: thisPkgName, Version: 1}); err != nil {
		t.Fatalf("cannot register schema version: %s", err)
	}

	handler := SchemaMigratingHandler(thisPkgName, &almstest.Handler{})
	// Use custom register reference so that our test is not polluted by
	// external registrations.
	handler.(*schemaMigratingHandler).migrations = reg

	var err error

	// Message has the same schema version as currently active one. No
	// migration should be applied.
	// Handler is modifying/migrating message in place so we can use `msg`
	// reference to check migrated message state.
	msg := &MyMsg{
		Metadata: &alms.Metadata{Schema: 1},
		Content:  "foo",
	}
	_, err = handler.Check(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(1))
	assert.Equal(t, msg.Content, "foo")
	_, err = handler.Deliver(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(1))
	assert.Equal(t, msg.Content, "foo")

	// Upgrade the schema and ensure all further handler calls are migrating
	// the schema as well.
	if _, err := schema.Create(db, &Schema{Metadata: &alms.Metadata{Schema: 1}, Pkg: thisPkgName, Version: 2}); err != nil {
		t.Fatalf("cannot register schema version: %s", err)
	}

	_, err = handler.Check(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(2))
	assert.Equal(t, msg.Content, "foo m2")
	_, err = handler.Deliver(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(2))
	assert.Equal(t, msg.Content, "foo m2")

	// If a message is already migrated, it must not be upgraded.
	msg = &MyMsg{
		Metadata: &alms.Metadata{Schema: 2},
		Content:  "bar",
	}
	_, err = handler.Check(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(2))
	assert.Equal(t, msg.Content, "bar")
	_, err = handler.Deliver(nil, db, &almstest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, msg.Metadata.Schema, uint32(2))
	assert.Equal(t, msg.Content, "bar")
}

type MyMsg struct {
	Metadata *alms.Metadata
	Content  string

	err error
}

func (msg *MyMsg) GetMetadata() *alms.Metadata {
	return msg.Metadata
}

func (msg *MyMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return err
	}
	return msg.err
}

func (msg *MyMsg) Marshal() ([]byte, error) {
	return json.Marshal(msg)
}

func (msg *MyMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, &msg)
}

func (MyMsg) Path() string {
	return "testpkg/mymsg"
}

var _ Migratable = (*MyMsg)(nil)
var _ alms.Msg = (*MyMsg)(nil)
