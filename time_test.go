package alms

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alms-io/alms/errors"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantTime UnixTime
		wantErr  *errors.Error
	}{
		"zero time as number": {
			raw:      "0",
			wantTime: 0,
		},
		"zero time as string": {
			raw:      `"1970-01-01T01:00:00+01:00"`,
			wantTime: 0,
		},
		"a time as string": {
			raw:      `"2019-04-04T11:35:40.89181085+02:00"`,
			wantTime: 1554370540,
		},
		"a time as number": {
			raw:      "1554370540",
			wantTime: 1554370540,
		},
		"negative number": {
			raw:     "-1",
			wantErr: errors.ErrState,
		},
		"negative time as string": {
			raw:     `"1950-01-01T01:00:00+01:00"`,
			wantErr: errors.ErrState,
		},
		"invalid string": {
			raw:     `"not a time string"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
			if err == nil && got != tc.wantTime {
				t.Fatalf("want %d time, got %d", tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour + 4*time.Second)

	unow := AsUnixTime(now)
	ufuture := unow.Add(time.Hour + 4*time.Second)

	if future.Unix() != int64(ufuture) {
		t.Fatalf("want %d, got %d", future.Unix(), ufuture)
	}
}

func TestIsExpired(t *testing.T) {
	now := AsUnixTime(time.Now())
	ctx := WithBlockTime(context.Background(), now.Time())

	cases := map[string]struct {
		time        UnixTime
		wantExpired bool
	}{
		"an hour ago": {
			time:        now.Add(-time.Hour),
			wantExpired: true,
		},
		"exactly now": {
			time:        now,
			wantExpired: true,
		},
		"in an hour": {
			time:        now.Add(time.Hour),
			wantExpired: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := IsExpired(ctx, tc.time); got != tc.wantExpired {
				t.Fatalf("want %v, got %v", tc.wantExpired, got)
			}
		})
	}
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when the block time is missing")
		}
	}()
	IsExpired(context.Background(), AsUnixTime(time.Now()))
}

func TestUnixDurationUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantDur UnixDuration
		wantErr *errors.Error
	}{
		"number of seconds": {
			raw:     "123",
			wantDur: 123,
		},
		"zero seconds": {
			raw:     "0",
			wantDur: 0,
		},
		"negative number of seconds": {
			raw:     "-123",
			wantDur: -123,
		},
		"duration string": {
			raw:     `"2h"`,
			wantDur: UnixDuration(2 * 60 * 60),
		},
		"negative duration string": {
			raw:     `"-2m"`,
			wantDur: UnixDuration(-2 * 60),
		},
		"duration string with seconds": {
			raw:     `"1m1s"`,
			wantDur: 61,
		},
		"invalid string": {
			raw:     `"not a duration"`,
			wantErr: errors.ErrInput,
		},
		"out of range duration string": {
			raw:     `"1000000h"`,
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixDuration
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
			if err == nil && got != tc.wantDur {
				t.Fatalf("want %d duration, got %d", tc.wantDur, got)
			}
		})
	}
}
