package alms

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/alms-io/alms/crypto/bech32"
	"github.com/alms-io/alms/errors"
	"golang.org/x/crypto/blake2b"
)

var conditionFormat = regexp.MustCompile(`^([a-z0-9_\-]{3,10})/([a-z0-9_\-]{3,10})/(.+)$`)

// Condition is a specially formatted array, containing information on who
// can authorize an action. It is of the format:
//
//   sprintf("%s/%s/%s", extension, type, data)
type Condition []byte

func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Parse will extract the sections from the Condition bytes and verify it is
// properly formatted.
func (c Condition) Parse() (string, string, []byte, error) {
	chunks := conditionFormat.FindSubmatch(c)
	if chunks == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address will convert a Condition into an Address.
func (c Condition) Address() Address {
	return NewAddress(c)
}

// Equals checks if two conditions are the same.
func (c Condition) Equals(c2 Condition) bool {
	return bytes.Equal(c, c2)
}

// String returns a human readable string.
// We keep the extension and type in ascii and hex-encode the binary data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Validate returns an error if the Condition is not the proper format.
func (c Condition) Validate() error {
	if !conditionFormat.Match(c) {
		return errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal("")
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	if len(enc) == 0 {
		*c = nil
		return nil
	}
	cond, err := buildCondition(enc)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

// buildCondition parses a human readable "extension/type/hexdata"
// representation back into a Condition.
func buildCondition(enc string) (Condition, error) {
	args := strings.Split(enc, "/")
	if len(args) != 3 {
		return nil, errors.Wrapf(errors.ErrInput, "invalid condition format: %q", enc)
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed condition data: %s", err)
	}
	c := NewCondition(args[0], args[1], data)
	return c, c.Validate()
}

// AddressLength is the length of all addresses. You can modify it in init()
// before any addresses are calculated, but it must not change during the
// lifetime of the kvstore.
var AddressLength = 20

// Address represents a collision-free, one-way digest of a Condition.
//
// It will be of size AddressLength.
type Address []byte

// Equals checks if two addresses are the same.
func (a Address) Equals(addr Address) bool {
	return bytes.Equal(a, addr)
}

// Clone provides an independent copy of an address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(a))
}

// UnmarshalJSON parses an Address in one of the supported text formats:
//
//   plain or "hex:" prefixed hex string,
//   "cond:extension/type/hexdata" condition that the address is derived
//   from,
//   "bech32:" prefixed bech32 encoded payload.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}

	chunks := strings.SplitN(enc, ":", 2)
	if len(chunks) == 1 {
		chunks = []string{"hex", chunks[0]}
	}

	// No value zeros the address.
	if len(chunks[1]) == 0 {
		*a = nil
		return nil
	}

	switch format, data := chunks[0], chunks[1]; format {
	case "hex":
		val, err := hex.DecodeString(data)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "malformed hex address: %s", err)
		}
		*a = val
		return a.Validate()
	case "cond":
		cond, err := buildCondition(data)
		if err != nil {
			return err
		}
		*a = cond.Address()
		return nil
	case "bech32":
		_, payload, err := bech32.Decode(data)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "malformed bech32 address: %s", err)
		}
		*a = payload
		return a.Validate()
	default:
		return errors.Wrapf(errors.ErrType, "unknown format %q", format)
	}
}

// Bech32String returns a human readable bech32 representation with the
// given human readable part.
func (a Address) Bech32String(hrp string) string {
	raw, err := bech32.Encode(hrp, a)
	if err != nil {
		return fmt.Sprintf("Invalid address: %X", []byte(a))
	}
	return string(raw)
}

// String returns a human readable string.
// Currently hex, may move to bech32.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: invalid length %d", len(a))
	}
	return nil
}

// NewAddress hashes and truncates into the proper size.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := blake2b.Sum256(data)
	return h[:AddressLength]
}
