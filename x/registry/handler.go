package registry

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
	"github.com/alms-io/alms/x"
)

const (
	registerBeneficiaryCost = 100
	setVerifiedCost         = 50
)

func RegisterQuery(qr alms.QueryRouter) {
	NewBeneficiaryBucket().Register("beneficiaries", qr)
}

func RegisterRoutes(r alms.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("registry", r)

	bucket := NewBeneficiaryBucket()

	r.Handle("registry/register", &registerBeneficiaryHandler{
		auth:   auth,
		bucket: bucket,
	})
	r.Handle("registry/verify", &verifyBeneficiaryHandler{
		auth:   auth,
		bucket: bucket,
	})
	r.Handle("registry/revoke", &revokeBeneficiaryHandler{
		auth:   auth,
		bucket: bucket,
	})
}

type registerBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

func (h *registerBeneficiaryHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: registerBeneficiaryCost}, nil
}

func (h *registerBeneficiaryHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	bnf := Beneficiary{
		Metadata: &alms.Metadata{Schema: 1},
		Address:  msg.Address,
		Name:     msg.Name,
		Verified: false,
	}
	// Both address and name are unique indexes, so registering the same
	// organization twice fails with a duplicate error.
	key, err := h.bucket.Put(db, nil, &bnf)
	if err != nil {
		return nil, errors.Wrap(err, "store beneficiary")
	}
	return &alms.DeliverResult{Data: key}, nil
}

func (h *registerBeneficiaryHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*RegisterBeneficiaryMsg, error) {
	var msg RegisterBeneficiaryMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Address) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "beneficiary address did not authorize the registration")
	}
	// Both address and name are unique indexes. Look them up here so that
	// a duplicate registration is rejected during the check already.
	var existing []Beneficiary
	if _, err := h.bucket.ByIndex(db, "address", msg.Address, &existing); err != nil {
		return nil, errors.Wrap(err, "address index")
	}
	if len(existing) != 0 {
		return nil, errors.Wrapf(errors.ErrDuplicate, "address %s already registered", msg.Address)
	}
	if _, err := h.bucket.ByIndex(db, "name", []byte(msg.Name), &existing); err != nil {
		return nil, errors.Wrap(err, "name index")
	}
	if len(existing) != 0 {
		return nil, errors.Wrapf(errors.ErrDuplicate, "name %q already registered", msg.Name)
	}
	return &msg, nil
}

type verifyBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

func (h *verifyBeneficiaryHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: setVerifiedCost}, nil
}

func (h *verifyBeneficiaryHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := setVerified(db, h.bucket, msg.BeneficiaryID, true); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{Data: msg.BeneficiaryID}, nil
}

func (h *verifyBeneficiaryHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*VerifyBeneficiaryMsg, error) {
	var msg VerifyBeneficiaryMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizedByAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	var bnf Beneficiary
	if err := h.bucket.One(db, msg.BeneficiaryID, &bnf); err != nil {
		return nil, errors.Wrap(err, "get beneficiary")
	}
	return &msg, nil
}

type revokeBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

func (h *revokeBeneficiaryHandler) Check(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &alms.CheckResult{GasAllocated: setVerifiedCost}, nil
}

func (h *revokeBeneficiaryHandler) Deliver(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*alms.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := setVerified(db, h.bucket, msg.BeneficiaryID, false); err != nil {
		return nil, err
	}
	return &alms.DeliverResult{Data: msg.BeneficiaryID}, nil
}

func (h *revokeBeneficiaryHandler) validate(ctx alms.Context, db alms.KVStore, tx alms.Tx) (*RevokeBeneficiaryMsg, error) {
	var msg RevokeBeneficiaryMsg
	if err := alms.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizedByAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	var bnf Beneficiary
	if err := h.bucket.One(db, msg.BeneficiaryID, &bnf); err != nil {
		return nil, errors.Wrap(err, "get beneficiary")
	}
	return &msg, nil
}

// authorizedByAdmin returns an error unless the transaction was authorized
// by the admin declared in the registry configuration.
func authorizedByAdmin(ctx alms.Context, db alms.KVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return errors.Wrap(err, "load conf")
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return errors.Wrap(errors.ErrUnauthorized, "admin authorization required")
	}
	return nil
}

func setVerified(db alms.KVStore, bucket orm.ModelBucket, beneficiaryID []byte, verified bool) error {
	var bnf Beneficiary
	if err := bucket.One(db, beneficiaryID, &bnf); err != nil {
		return errors.Wrap(err, "get beneficiary")
	}
	bnf.Verified = verified
	if _, err := bucket.Put(db, beneficiaryID, &bnf); err != nil {
		return errors.Wrap(err, "store beneficiary")
	}
	return nil
}
