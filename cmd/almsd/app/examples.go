package almsd

import (
	"encoding/hex"
	"strings"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/commands"
	"github.com/alms-io/alms/x/fund"
	"github.com/alms-io/alms/x/registry"
)

// we fix the conditions here for deterministic output with the same encoding
// these are not secure at all, but the only point is to check the format,
// which is easier when everything is reproduceable.
var (
	donor   = makeCondition("1234567890")
	charity = makeCondition("F00BA411").Address()
	auditor = makeCondition("00CAFE00F00D")
)

// makeCondition repeats the string as long as needed to get 16 digits, then
// parses it as hex. It uses this repeated string as a "random" seed
// for the condition data.
//
// nothing random about it, but at least it gives us variety
func makeCondition(seed string) alms.Condition {
	rep := 16/len(seed) + 1
	in := strings.Repeat(seed, rep)[:16]
	bin, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return alms.NewCondition("preauth", "seed", bin)
}

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	cycle := &fund.Cycle{
		Metadata:   &alms.Metadata{Schema: 1},
		Phase:      fund.PhaseOpen,
		OpenedAt:   1567668590,
		ClosesAt:   1568273390,
		TotalPool:  125000,
		TotalTally: 380,
	}

	contribute := &fund.ContributeMsg{
		Metadata: &alms.Metadata{Schema: 1},
		Amount:   coin.NewCoinp(250, 0, "ALM"),
	}

	vote := &fund.VoteMsg{
		Metadata:    &alms.Metadata{Schema: 1},
		Beneficiary: charity,
		Power:       49,
	}

	impact := &fund.SubmitImpactMsg{
		Metadata:    &alms.Metadata{Schema: 1},
		CycleID:     1,
		Beneficiary: charity,
		Score:       85,
	}

	beneficiary := &registry.Beneficiary{
		Metadata: &alms.Metadata{Schema: 1},
		Address:  charity,
		Name:     "clean-water-initiative",
		Verified: true,
	}

	tx := &Tx{
		PreauthConditions: [][]byte{donor},
		Sum:               &Tx_ContributeMsg{contribute},
	}

	batchTx := &Tx{
		PreauthConditions: [][]byte{auditor},
		Sum: &Tx_ExecuteBatchMsg{&ExecuteBatchMsg{
			Messages: []ExecuteBatchMsg_Union{
				{Sum: &ExecuteBatchMsg_Union_SubmitImpactMsg{impact}},
				{Sum: &ExecuteBatchMsg_Union_CloseCycleMsg{&fund.CloseCycleMsg{
					Metadata: &alms.Metadata{Schema: 1},
					CycleID:  1,
				}}},
			},
		}},
	}

	return []commands.Example{
		{Filename: "cycle", Obj: cycle},
		{Filename: "contribute_msg", Obj: contribute},
		{Filename: "vote_msg", Obj: vote},
		{Filename: "submit_impact_msg", Obj: impact},
		{Filename: "beneficiary", Obj: beneficiary},
		{Filename: "contribute_tx", Obj: tx},
		{Filename: "batch_tx", Obj: batchTx},
	}
}
