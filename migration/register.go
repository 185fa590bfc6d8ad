package migration

import (
	"reflect"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

// Migratable is implemented by both alms.Msg and models used by the orm
// package. Schema migration supports both of those data types.
type Migratable interface {
	GetMetadata() *alms.Metadata
	Validate() error
}

// Migrator is a function that migrates a data entity in place from version
// migrateTo-1 to migrateTo.
type Migrator func(db alms.ReadOnlyKVStore, msgOrModel Migratable) error

// NoModification is a migration function that migrates data that requires no
// change. It should be used to register migrations that do not require any
// modifications.
func NoModification(db alms.ReadOnlyKVStore, msgOrModel Migratable) error {
	return nil
}

func newRegister() *register {
	return &register{
		migrations: make(map[payloadVersion]Migrator),
		heads:      make(map[reflect.Type]uint32),
	}
}

// register maintains a set of migration functions for all schema versioned
// payloads. Migrations for each payload must be registered sequentially,
// starting with version one.
type register struct {
	migrations map[payloadVersion]Migrator
	heads      map[reflect.Type]uint32
}

// payloadVersion references a message or a model at a given schema version.
type payloadVersion struct {
	payload reflect.Type
	version uint32
}

func (r *register) MustRegister(migrateTo uint32, msgOrModel Migratable, fn Migrator) {
	if err := r.Register(migrateTo, msgOrModel, fn); err != nil {
		panic(err)
	}
}

func (r *register) Register(migrateTo uint32, msgOrModel Migratable, fn Migrator) error {
	if migrateTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal allowed version is 1")
	}
	tp, err := payloadType(msgOrModel)
	if err != nil {
		return err
	}
	if head := r.heads[tp]; head+1 != migrateTo {
		return errors.Wrapf(errors.ErrInput,
			"migrations must be registered sequentially, next version of %s.%s is %d",
			tp.PkgPath(), tp.Name(), head+1)
	}
	r.migrations[payloadVersion{payload: tp, version: migrateTo}] = fn
	r.heads[tp] = migrateTo
	return nil
}

func (r *register) Apply(db alms.ReadOnlyKVStore, msgOrModel Migratable, migrateTo uint32) error {
	if migrateTo < 1 {
		return errors.Wrap(errors.ErrInput, "minimal allowed version is 1")
	}
	tp, err := payloadType(msgOrModel)
	if err != nil {
		return err
	}

	meta := msgOrModel.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", msgOrModel)
	}
	for v := meta.Schema + 1; v <= migrateTo; v++ {
		migrate, ok := r.migrations[payloadVersion{payload: tp, version: v}]
		if !ok {
			return errors.Wrapf(errors.ErrSchema, "migration to version %d missing", v)
		}
		if err := migrate(db, msgOrModel); err != nil {
			return errors.Wrapf(err, "migration to version %d", v)
		}
		meta.Schema = v
	}

	if err := msgOrModel.Validate(); err != nil {
		return errors.Wrap(err, "validation")
	}
	return nil
}

// payloadType returns the structure type of a given payload instance. Only
// structures can be schema versioned.
func payloadType(msgOrModel Migratable) (reflect.Type, error) {
	tp := reflect.TypeOf(msgOrModel)
	for tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	if tp.Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "only struct can be migrated, got %T", msgOrModel)
	}
	return tp, nil
}

// reg is a globally available register instance that must be used during the
// runtime to register migration handlers.
// Register is declared as a separate type so that it can be tested without
// worrying about the global state.
var reg *register = newRegister()

// MustRegister registers a migration function for a given schema version of
// a payload. It panics if the registration is not possible.
func MustRegister(migrateTo uint32, msgOrModel Migratable, fn Migrator) {
	reg.MustRegister(migrateTo, msgOrModel, fn)
}

// Apply updates a payload by applying all missing data migrations. Even a no
// modification migration is updating the metadata to point to the latest data
// format version.
//
// Because changes are applied directly on the passed payload, even if this
// function fails some of the data migrations might be applied.
//
// Validation method is called only on the final version of the payload.
func Apply(db alms.ReadOnlyKVStore, msgOrModel Migratable, migrateTo uint32) error {
	return reg.Apply(db, msgOrModel, migrateTo)
}
