package app

import (
	"context"
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/store/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestAddValChange(t *testing.T) {
	pubKey := alms.PubKey{
		Type: "test",
		Data: []byte("someKey"),
	}
	pubKey2 := alms.PubKey{
		Type: "test",
		Data: []byte("someKey2"),
	}
	app := NewStoreApp("dummy", iavl.MockCommitStore(), alms.NewQueryRouter(), context.Background())

	t.Run("Diff is equal to output with one update", func(t *testing.T) {
		diff := []alms.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
		}
		app.AddValChange(diff)
		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff, alms.ValidatorUpdatesFromABCI(res.ValidatorUpdates).ValidatorUpdates)
	})

	t.Run("Only produce last update to multiple validators", func(t *testing.T) {
		diff := []alms.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
			{PubKey: pubKey2, Power: 15},
			{PubKey: pubKey, Power: 1},
			{PubKey: pubKey2, Power: 2},
		}

		app.AddValChange(diff)
		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff[2:], alms.ValidatorUpdatesFromABCI(res.ValidatorUpdates).ValidatorUpdates)
	})

	t.Run("A call with an empty diff does nothing", func(t *testing.T) {
		diff := []alms.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
			{PubKey: pubKey2, Power: 15},
		}
		app.AddValChange(diff)
		app.AddValChange(make([]alms.ValidatorUpdate, 0))

		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff, alms.ValidatorUpdatesFromABCI(res.ValidatorUpdates).ValidatorUpdates)
	})
}

func TestSplitPath(t *testing.T) {
	cases := map[string]struct {
		path     string
		wantPath string
		wantMod  string
	}{
		"no modifier":      {"/fundcycles", "/fundcycles", ""},
		"prefix modifier":  {"/fundcycles?prefix", "/fundcycles", "prefix"},
		"root with prefix": {"/?prefix", "/", "prefix"},
		"root":             {"/", "/", ""},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path, mod := splitPath(tc.path)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantMod, mod)
		})
	}
}
