package alms

import (
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	specs := map[string]struct {
		Updates ValidatorUpdates
		Exp     ValidatorUpdates
		ExpZero ValidatorUpdates
	}{

		"Empty": {
			Updates: ValidatorUpdates{},
			Exp:     ValidatorUpdates{},
			ExpZero: ValidatorUpdates{},
		},
		"No Duplicates or zeroes": {
			Updates: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 3, PubKey: PubKey{Type: "123", Data: []byte("1234")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				},
			},
			Exp: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 3, PubKey: PubKey{Type: "123", Data: []byte("1234")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}}},
			},
			ExpZero: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 3, PubKey: PubKey{Type: "123", Data: []byte("1234")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}}},
			},
		},
		"Duplicates and zeroes": {
			Updates: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 0, PubKey: PubKey{Type: "123", Data: []byte("1234")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				},
			},
			Exp: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 0, PubKey: PubKey{Type: "123", Data: []byte("1234")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				}},
			ExpZero: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				},
			},
		},
		"Zero duplicate": {
			Updates: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 1, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 0, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				},
			},
			Exp: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 0, PubKey: PubKey{Type: "123", Data: []byte("12")}},
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				}},
			ExpZero: ValidatorUpdates{
				ValidatorUpdates: []ValidatorUpdate{
					{Power: 6, PubKey: PubKey{Type: "12", Data: []byte("1234")}},
				},
			},
		},
	}
	for msg, spec := range specs {
		t.Run(msg, func(t *testing.T) {
			dedupe := spec.Updates.Deduplicate(false)
			if !reflect.DeepEqual(dedupe, spec.Exp) {
				t.Fatalf("expected %v to equal %+v", spec.Exp, dedupe)
			}

			dedupeZero := spec.Updates.Deduplicate(true)
			if !reflect.DeepEqual(dedupeZero, spec.ExpZero) {
				t.Fatalf("expected %v to equal %+v", spec.ExpZero, dedupeZero)
			}
		})
	}
}

func TestValidatorUpdateValidate(t *testing.T) {
	cases := map[string]struct {
		update  ValidatorUpdate
		wantErr bool
	}{
		"valid ed25519 key": {
			update: ValidatorUpdate{
				PubKey: PubKey{Type: "ed25519", Data: make([]byte, 32)},
				Power:  5,
			},
		},
		"zero power is valid": {
			update: ValidatorUpdate{
				PubKey: PubKey{Type: "ed25519", Data: make([]byte, 32)},
				Power:  0,
			},
		},
		"negative power": {
			update: ValidatorUpdate{
				PubKey: PubKey{Type: "ed25519", Data: make([]byte, 32)},
				Power:  -1,
			},
			wantErr: true,
		},
		"wrong key length": {
			update: ValidatorUpdate{
				PubKey: PubKey{Type: "ed25519", Data: make([]byte, 16)},
				Power:  5,
			},
			wantErr: true,
		},
		"wrong key type": {
			update: ValidatorUpdate{
				PubKey: PubKey{Type: "secp256k1", Data: make([]byte, 32)},
				Power:  5,
			},
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.update.Validate()
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Fatalf("want error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}
