package alms

import (
	"encoding/json"
	"math"
	"time"

	"github.com/alms-io/alms/errors"
)

// UnixTime represents a point in time as POSIX time.
// This type comes in handy when dealing with protobuf messages. Instead of
// using Go's time.Time that includes nanoseconds use primitive int64 type
// and seconds precision. Some languages do not support nanoseconds
// precision anyway.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in
// time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Add modifies this UnixTime by given duration. This is compatible with
// time.Time.Add method. Any duration value smaller than a second is
// ignored as it cannot be represented by the UnixTime type.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// AsUnixTime converts given Time structure into its UnixTime
// representation. All time information more precise than the second is
// dropped as it cannot be represented by the UnixTime type.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but
// it is convenient to use a string format in configurations (ie genesis
// file).
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		unix := UnixTime(n)
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := AsUnixTime(stdtime)
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < minUnixTime {
		return errors.Wrap(errors.ErrState, "time must be an A.D. value")
	}
	if t > maxUnixTime {
		return errors.Wrap(errors.ErrState, "time must be an before year 10000")
	}
	return nil
}

// String returns the usual date/time representation of this time.
func (t UnixTime) String() string {
	return t.Time().UTC().String()
}

const (
	minUnixTime = 0
	maxUnixTime = 253402300799 // time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. Expiration is inclusive, meaning that
// if current time is equal to the expiration time than this function
// returns true.
//
// This function panic if the block time is not provided in the context.
// This must never happen. The panic is here to prevent from broken setup
// to be processing data incorrectly.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t <= AsUnixTime(blockNow)
}

// InThePast returns true if given time is in the past as compared to the
// current time as declared in the context. Context "now" should come from
// the block header.
// Keep in mind that this function is not inclusive of current time. It
// given time is equal to "now" then this function returns false.
func InThePast(ctx Context, t time.Time) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t.Before(now)
}

// InTheFuture returns true if given time is in the future as compared to
// the current time as declared in the context. Context "now" should come
// from the block header.
// Keep in mind that this function is not inclusive of current time. It
// given time is equal to "now" then this function returns false.
func InTheFuture(ctx Context, t time.Time) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t.After(now)
}

// UnixDuration represents a time duration with granularity of a second.
// This type should be used mostly for protobuf message declarations.
type UnixDuration int32

// AsUnixDuration converts given Duration into UnixDuration. Because of the
// UnixDuration granularity precision of the value is lowered to seconds.
func AsUnixDuration(d time.Duration) UnixDuration {
	return UnixDuration(d / time.Second)
}

// Duration returns the time.Duration representation of this value.
func (d UnixDuration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// UnmarshalJSON loads JSON serialized representation into this value. JSON
// serialized value can be represented as both a number of seconds and a
// human readable string as supported by the time package.
func (d *UnixDuration) UnmarshalJSON(raw []byte) error {
	var sec int32
	if err := json.Unmarshal(raw, &sec); err == nil {
		*d = UnixDuration(sec)
		return nil
	}

	var stdduration string
	if err := json.Unmarshal(raw, &stdduration); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid duration format")
	}
	dur, err := time.ParseDuration(stdduration)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid duration string: %s", err)
	}
	if dur > math.MaxInt32*time.Second || dur < math.MinInt32*time.Second {
		return errors.Wrap(errors.ErrOverflow, "duration")
	}
	*d = AsUnixDuration(dur)
	return nil
}

// MarshalJSON returns a JSON serialized representation of this value.
func (d UnixDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(d))
}

func (d UnixDuration) String() string {
	return d.Duration().String()
}
