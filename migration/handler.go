package migration

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/x"
)

// SchemaMigratingHandler returns a handler that will ensure incoming
// messages are in the current schema version format. If a message in an
// older schema is handled then it is first being migrated. Messages that
// cannot be migrated to the current schema version are returning a migration
// error. This functionality is executed before the decorated handler and it
// is completely transparent to the wrapped handler.
func SchemaMigratingHandler(packageName string, h alms.Handler) alms.Handler {
	return &schemaMigratingHandler{
		handler:     h,
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

type schemaMigratingHandler struct {
	handler     alms.Handler
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

func (h *schemaMigratingHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if err := h.migrate(db, tx); err != nil {
		return nil, errors.Wrap(err, "migration")
	}
	return h.handler.Check(ctx, db, tx)
}

func (h *schemaMigratingHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	if err := h.migrate(db, tx); err != nil {
		return nil, errors.Wrap(err, "migration")
	}
	return h.handler.Deliver(ctx, db, tx)
}

func (h *schemaMigratingHandler) migrate(db alms.ReadOnlyKVStore, tx alms.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "get msg")
	}

	m, ok := msg.(Migratable)
	if !ok {
		return errors.Wrap(errors.ErrMsg, "message cannot be migrated")
	}
	currSchemaVer, err := h.schema.CurrentSchema(db, h.packageName)
	if err != nil {
		return errors.Wrap(err, "current message schema")
	}

	// Migration is applied in place, directly modifying the instance.
	if err := h.migrations.Apply(db, m, currSchemaVer); err != nil {
		return errors.Wrap(err, "schema migration")
	}
	return nil
}

// SchemaMigratingRegistry decorates the registry so that every registered
// handler is wrapped with a SchemaMigratingHandler for the given package.
func SchemaMigratingRegistry(packageName string, r alms.Registry) alms.Registry {
	return &schemaMigratingRegistry{
		reg:         r,
		packageName: packageName,
	}
}

type schemaMigratingRegistry struct {
	reg         alms.Registry
	packageName string
}

func (r *schemaMigratingRegistry) Handle(path string, h alms.Handler) {
	r.reg.Handle(path, SchemaMigratingHandler(r.packageName, h))
}

// RegisterRoutes registers handlers for schema version upgrade processing.
func RegisterRoutes(r alms.Registry, auth x.Authenticator) {
	bucket := NewSchemaBucket()
	r.Handle(pathUpgradeSchemaMsg, &upgradeSchemaHandler{
		bucket: bucket,
		auth:   auth,
	})
}

type upgradeSchemaHandler struct {
	bucket *SchemaBucket
	auth   x.Authenticator
}

func (h *upgradeSchemaHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{}, nil
}

func (h *upgradeSchemaHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	ver, err := h.bucket.CurrentSchema(db, msg.Pkg)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "current schema version")
	}

	schema := Schema{
		Metadata: &alms.Metadata{Schema: 1},
		Pkg:      msg.Pkg,
		Version:  ver + 1,
	}
	obj, err := h.bucket.Create(db, &schema)
	if err != nil {
		return nil, errors.Wrap(err, "create schema version")
	}

	return &alms.DeliverResult{Data: obj.Key()}, nil
}

func (h *upgradeSchemaHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*UpgradeSchemaMsg, error) {
	var msg UpgradeSchemaMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	conf := mustLoadConf(db)
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}

	return &msg, nil
}

// SchemaRoutingHandler is a container that clubs together message handlers
// for a single type message but different schema formats. Each handler is
// registered together with the lowest schema version that it supports. For example
//
//   handler := SchemaRoutingHandler{
//     1: &MyHandlerVersionAlpha{},
//     7: &MyHandlerVersionBeta{},
//   }
//
// In the above setup, messages with schema version 1 to 6 will be handled by
// the alpha handler. Messages with schema version 7 and above are passed to
// the beta handler.
//
// It is not allowed to use an empty SchemaRoutingHandler instance. It is not
// allowed to register a handler for schema version zero.
// All messages processed by this handler must implement Migratable interface.
type SchemaRoutingHandler []alms.Handler

var _ alms.Handler = (SchemaRoutingHandler)(nil)

func (h SchemaRoutingHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	handler, err := h.selectHandler(tx)
	if err != nil {
		return nil, err
	}
	return handler.Check(ctx, db, tx)
}

func (h SchemaRoutingHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	handler, err := h.selectHandler(tx)
	if err != nil {
		return nil, err
	}
	return handler.Deliver(ctx, db, tx)
}

// selectHandler returns the best fitting handler to process given transaction,
// selected by introspecting the transaction message schema version.
func (h SchemaRoutingHandler) selectHandler(tx alms.Tx) (alms.Handler, error) {
	if len(h) == 0 {
		return nil, errors.Wrap(errors.ErrHuman, "no handler registered")
	}
	if h[0] != nil {
		return nil, errors.Wrap(errors.ErrHuman, "zero schema version handler must not be registered")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	m, ok := msg.(Migratable)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "message %T does not support schema versioning", msg)
	}
	meta := m.GetMetadata()

	var handler alms.Handler
	for ver := uint32(1); ver < uint32(len(h)); ver++ {
		// It is allowed to leave gaps between handler version
		// mappings. If this is the case, the previously available
		// version must be used.
		if next := h[ver]; next != nil {
			handler = next
		}
		if ver >= meta.Schema {
			break
		}
	}
	if handler == nil {
		return nil, errors.Wrapf(errors.ErrSchema, "no matching handler for schema version %d", meta.Schema)
	}
	return handler, nil
}
