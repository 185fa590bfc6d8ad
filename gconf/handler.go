package gconf

import (
	"reflect"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/x"
)

// OwnedConfig must have an Owner field in protobuf. A configuration update
// message must be signed by an owner in order to be authorized to apply the
// change.
type OwnedConfig interface {
	Unmarshaler
	ValidMarshaler
	GetOwner() alms.Address
}

type UpdateConfigurationHandler struct {
	pkg string
	// We require this type to load the data.
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin func(alms.ReadOnlyKVStore) (alms.Address, error)
}

var _ alms.Handler = (*UpdateConfigurationHandler)(nil)

// NewUpdateConfigurationHandler returns a message handler that processes a
// configuration patch message.
//
// To pass the authentication step, each message must be signed by the
// current configuration owner.
//
// A chicken-egg problem appears when the configuration does not exist (it
// was not created via the genesis). Without a configuration there is no
// owner that could authorize creating the first configuration. To address
// this, an optional initConfAdmin argument can be given to provide a
// creation only admin address. A good default is migration.CurrentAdmin.
// initConfAdmin is used to authenticate the transaction only when no
// configuration exists yet.
func NewUpdateConfigurationHandler(
	pkg string,
	config OwnedConfig,
	auth x.Authenticator,
	initConfAdmin func(alms.ReadOnlyKVStore) (alms.Address, error),
) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initConfAdmin,
	}
}

func (h UpdateConfigurationHandler) Check(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx alms.Context, store alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx alms.Context, store alms.KVStore, tx alms.Tx) error {
	// Work on a fresh instance on every call. The handler is shared
	// between check and deliver and patching mutates pointer fields, so
	// loading into the same value twice would clobber the message payload.
	conf := reflect.New(reflect.TypeOf(h.config).Elem()).Interface().(OwnedConfig)

	switch err := Load(store, h.pkg, conf); {
	case err == nil:
		// Configuration owner must sign the transaction in order to
		// authenticate the change.
		owner := conf.GetOwner()
		if owner == nil {
			return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		if !h.auth.HasAddress(ctx, owner) {
			return errors.Wrap(errors.ErrUnauthorized, "owner did not sign transaction")
		}
	case errors.ErrNotFound.Is(err):
		// Configuration entity does not exist. It was not initialized
		// via the genesis and will be created for the first time now.
		if h.initAdmin == nil {
			return errors.Wrap(errors.ErrUnauthorized, "configuration does not exist and cannot be initialized")
		}
		admin, err := h.initAdmin(store)
		if err != nil {
			return errors.Wrap(err, "get init admin")
		}
		if !h.auth.HasAddress(ctx, admin) {
			return errors.Wrap(errors.ErrUnauthorized, "initialization admin signature required")
		}
	default:
		return errors.Wrap(err, "load current configuration")
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(conf, payload); err != nil {
		return errors.Wrap(err, "cannot patch config with message payload")
	}

	if err := Save(store, h.pkg, conf); err != nil {
		return errors.Wrap(err, "cannot save updated config")
	}
	return nil
}

func patch(config OwnedConfig, payload OwnedConfig) error {
	// We are guaranteed that config and payload are the same type from
	// patchPayload.
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if !pType.ConvertibleTo(cType) {
		return errors.Wrap(errors.ErrMsg, "config in message doesn't match store")
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()

	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)

		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}

		cval.Field(i).Set(got)
	}

	return nil
}

// isZero returns true if given value represents a zero value of its type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

// patchPayload expects the transaction to have a message with a "Patch"
// field of the same type as the configuration. Content of this field is
// extracted and returned.
func patchPayload(tx alms.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	val := pval.Elem()

	field := val.FieldByName("Patch")
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}
