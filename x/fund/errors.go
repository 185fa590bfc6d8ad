package fund

import "github.com/alms-io/alms/errors"

// Domain errors of the fund extension. Codes 130 and up are reserved for
// extensions, the framework roots stay below.
var (
	// ErrPhaseClosed is returned when a contribution or a vote arrives
	// while no cycle is accepting them.
	ErrPhaseClosed = errors.Register(130, "cycle phase closed")

	// ErrInvalidAmount is returned for a zero, negative, fractional or
	// wrong ticker contribution or vote amount.
	ErrInvalidAmount = errors.Register(131, "invalid amount")

	// ErrInsufficientPower is returned when a vote asks for more power
	// than the donor holds. The spend is never clamped.
	ErrInsufficientPower = errors.Register(132, "insufficient voting power")

	// ErrUnknownBeneficiary is returned for votes and impact submissions
	// referencing an unregistered or unverified beneficiary.
	ErrUnknownBeneficiary = errors.Register(133, "unknown beneficiary")

	// ErrUntrustedSource is returned when an impact score is submitted
	// by anyone but the configured trusted source.
	ErrUntrustedSource = errors.Register(134, "untrusted source")

	// ErrDuplicateSubmission is returned when an impact score for the
	// beneficiary and cycle is already recorded. The first stays final.
	ErrDuplicateSubmission = errors.Register(135, "duplicate submission")

	// ErrNotClosed is returned when distribution is requested for a
	// cycle that is still open.
	ErrNotClosed = errors.Register(136, "cycle not closed")

	// ErrAlreadyDistributed is returned for operations on a cycle that
	// reached its terminal phase.
	ErrAlreadyDistributed = errors.Register(137, "cycle already distributed")
)
