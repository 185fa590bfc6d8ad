package alms

import (
	"reflect"

	"github.com/alms-io/alms/errors"
)

// Marshaller is anything that can be represented in binary.
//
// Marshall may validate the data before serializing it and return an error.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshal, as this almost always requires a pointer,
// and functions that only need to marshal bytes can use the Marshaller
// interface to access non-pointers as well.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a payload to be processed by a handler. Messages are grouped into
// transactions.
//
// The path structures the message space much like a URL routes an http
// request: first the extension name, then the action.
type Msg interface {
	Persistent

	// Validate performs a sanity check on the message content. It must
	// not access any external state.
	Validate() error

	// Path returns the routing path for this message.
	Path() string
}

// Tx represents the body of a transaction: the authorization envelope
// around exactly one message.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message inside of the transaction, or
// "<unknown>" when it cannot be extracted.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "<unknown>"
}

// LoadMsg extracts the message from the transaction, validates it and
// loads it into given destination. Destination must be a pointer to the
// expected message type. Message type mismatch is an error.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot unpack transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction contains no message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	dest = dest.Elem()

	val := reflect.ValueOf(msg)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrType, "cannot load %T message into %T", msg, destination)
	}
	dest.Set(val)
	return nil
}

// ExtractMsgFromSum will find an alms message from a protobuf sum type. This
// assumes the message was created with a union-style oneof, where every
// member is a pointer to a Msg implementation.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container is <nil>")
	}
	pval := reflect.ValueOf(sum)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container: %T", sum)
	}
	val := pval.Elem()
	if val.NumField() != 1 {
		return nil, errors.Wrapf(errors.ErrInput, "unexpected message container field count: %d", val.NumField())
	}
	field := val.Field(0)
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, "message is <nil>")
	}
	res, ok := field.Interface().(Msg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "invalid message type: %T", field.Interface())
	}
	return res, nil
}
