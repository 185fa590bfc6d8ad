package errors

import (
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantErrs int
	}{
		"no errors given": {
			errs:    nil,
			wantNil: true,
		},
		"only nil errors given": {
			errs:    []error{nil, nil, (*Error)(nil)},
			wantNil: true,
		},
		"two errors": {
			errs:     []error{ErrNotFound, ErrState},
			wantErrs: 2,
		},
		"nil errors are ignored": {
			errs:     []error{nil, ErrNotFound, nil, ErrState, nil},
			wantErrs: 2,
		},
		"nested multi error is flattened": {
			errs: []error{
				Append(ErrNotFound, ErrState),
				ErrMsg,
			},
			wantErrs: 3,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %+v", err)
				}
				return
			}
			u, ok := err.(unpacker)
			if !ok {
				t.Fatalf("want a multi error, got %T", err)
			}
			if n := len(u.Unpack()); n != tc.wantErrs {
				t.Fatalf("want %d grouped errors, got %d", tc.wantErrs, n)
			}
		})
	}
}

func TestAppendMaintainsErrorCode(t *testing.T) {
	err := Append(Wrap(ErrNotFound, "this one"), ErrState)
	if !ErrNotFound.Is(err) {
		t.Error("multi error must match the first grouped error kind")
	}
	if !ErrState.Is(err) {
		t.Error("multi error must match the second grouped error kind")
	}
	if ErrMsg.Is(err) {
		t.Error("multi error must not match a kind that is not grouped")
	}
}

func TestMultiErrorMessage(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"single error uses its own message": {
			err:  Append(ErrNotFound),
			want: "not found",
		},
		"multiple errors are listed": {
			err:  Append(ErrNotFound, ErrState),
			want: "2 errors occurred:\n\tnot found\n\tinvalid state",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
