package gconf

import (
	"reflect"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/x"
)

// OwnedConfig is a configuration that names its owner. Only the owner can
// sign an update.
type OwnedConfig interface {
	Configuration
	GetOwner() cattery.Address
}

// Updated is emitted when a configuration is changed by a transaction.
type Updated struct {
	Package string
	Signer  cattery.Address
}

func (Updated) EventKind() string { return "conf.updated" }

func (e Updated) Attributes() []cattery.KeyValue {
	return []cattery.KeyValue{
		{Key: "package", Value: e.Package},
		{Key: "signer", Value: e.Signer.String()},
	}
}

// UpdateConfigurationHandler applies the "Patch" field of a message onto
// the stored configuration of one package.
type UpdateConfigurationHandler struct {
	pkg string
	// config is a prototype used to create instances to load the data.
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin func(cattery.ReadOnlyKVStore) (cattery.Address, error)
}

var _ cattery.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler updating the
// configuration of pkg. An update must be signed by the configuration
// owner.
//
// A package without a genesis configuration has no owner. When
// initConfAdmin is given, the address it returns may create the first
// configuration; it is never consulted again once one exists.
func NewUpdateConfigurationHandler(
	pkg string,
	config OwnedConfig,
	auth x.Authenticator,
	initConfAdmin func(cattery.ReadOnlyKVStore) (cattery.Address, error),
) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initConfAdmin,
	}
}

func (h UpdateConfigurationHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := h.apply(ctx, db, tx, cattery.DiscardEvents); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	res := &cattery.DeliverResult{}
	if err := h.apply(ctx, db, tx, &res.Events); err != nil {
		return nil, err
	}
	cattery.GetLogger(ctx).Info("configuration updated", "package", h.pkg)
	return res, nil
}

func (h UpdateConfigurationHandler) apply(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, events cattery.EventEmitter) error {
	config := reflect.New(reflect.TypeOf(h.config).Elem()).Interface().(OwnedConfig)
	signer, err := h.authorize(ctx, db, config)
	if err != nil {
		return err
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return errors.Wrap(err, "message payload")
	}
	if err := patch(config, payload); err != nil {
		return err
	}
	if err := Save(db, h.pkg, config); err != nil {
		return errors.Wrap(err, "save configuration")
	}
	events.Emit(Updated{Package: h.pkg, Signer: signer})
	return nil
}

// authorize loads the current configuration into config and returns the
// address that must have signed the transaction.
func (h UpdateConfigurationHandler) authorize(ctx cattery.Context, db cattery.KVStore, config OwnedConfig) (cattery.Address, error) {
	var signer cattery.Address
	switch err := Load(db, h.pkg, config); {
	case err == nil:
		signer = config.GetOwner()
		if signer == nil {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "%s configuration has no owner", h.pkg)
		}
	case errors.ErrNotFound.Is(err):
		if h.initAdmin == nil {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "%s configuration does not exist and cannot be created", h.pkg)
		}
		admin, err := h.initAdmin(db)
		if err != nil {
			return nil, errors.Wrap(err, "init admin")
		}
		signer = admin
	default:
		return nil, errors.Wrap(err, "load configuration")
	}

	if !h.auth.HasAddress(ctx, signer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s configuration update must be signed by %s", h.pkg, signer)
	}
	return signer, nil
}

// patch copies every non zero field of payload onto config.
func patch(config, payload OwnedConfig) error {
	if reflect.TypeOf(payload) != reflect.TypeOf(config) {
		return errors.Wrapf(errors.ErrMsg, "patch of type %T cannot update %T", payload, config)
	}
	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()
	for i := 0; i < cval.NumField(); i++ {
		if f := pval.Field(i); !f.IsZero() {
			cval.Field(i).Set(f)
		}
	}
	return nil
}

// patchPayload returns the validated "Patch" field of the message.
func patchPayload(tx cattery.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	val := reflect.ValueOf(msg)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "message %T is not a struct pointer", msg)
	}
	field := val.Elem().FieldByName("Patch")
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrInput, "message %T has no Patch field", msg)
	}
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrEmpty, "patch")
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "patch of type %s is not a configuration", field.Type())
	}
	return payload, nil
}
