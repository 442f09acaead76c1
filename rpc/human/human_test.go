// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package human_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/mode"
	"github.com/bitmark-inc/soulbound/registry"
	"github.com/bitmark-inc/soulbound/rpc/caller"
	"github.com/bitmark-inc/soulbound/rpc/human"
	"github.com/bitmark-inc/soulbound/rpc/mocks"
	"github.com/bitmark-inc/soulbound/sbt"
)

const now = uint64(1600000000000)

func clock() uint64 { return now }

func normal(mode.Mode) bool { return true }

func TestIsHuman(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := mocks.NewMockOracle(ctl)
	h := human.New(logger.New(fixtures.LogCategory), normal, o, clock)

	proof := []sbt.Proof{{Issuer: fixtures.Issuer1, Tokens: []sbt.TokenId{1, 4}}}
	o.EXPECT().IsHuman(fixtures.Alice, now).Return(proof).Times(1)
	o.EXPECT().IsHuman(fixtures.Bob, now).Return(nil).Times(1)

	var reply human.IsHumanReply
	err := h.IsHuman(&human.AccountArguments{Account: fixtures.Alice}, &reply)
	assert.Nil(t, err, "wrong IsHuman")
	assert.True(t, reply.Human, "not human")
	assert.Equal(t, proof, reply.Proof, "wrong proof")

	reply = human.IsHumanReply{}
	err = h.IsHuman(&human.AccountArguments{Account: fixtures.Bob}, &reply)
	assert.Nil(t, err, "wrong IsHuman")
	assert.False(t, reply.Human, "human")
	assert.Equal(t, []sbt.Proof{}, reply.Proof, "empty proof")
}

func TestCall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := mocks.NewMockOracle(ctl)
	h := human.New(logger.New(fixtures.LogCategory), normal, o, clock)

	result := &registry.HumanCall{
		Contract: "poll.near",
		Function: "vote",
		Args: registry.HumanCallArgs{
			Caller:  fixtures.Alice,
			Payload: `{"option":1}`,
		},
	}
	o.EXPECT().IsHumanCall(registry.Call{Caller: fixtures.Alice, Deposit: sbt.MilliNEAR(0), Now: now}, "poll.near", "vote", `{"option":1}`).Return(result, nil).Times(1)
	o.EXPECT().IsHumanCallLock(gomock.Any(), "poll.near", "vote", `{"option":1}`, uint64(60000), true).Return(nil, fault.CallerIsNotHuman).Times(1)

	arguments := human.CallArguments{
		Arguments: caller.Arguments{Caller: fixtures.Alice},
		Contract:  "poll.near",
		Function:  "vote",
		Payload:   `{"option":1}`,
	}
	var reply registry.HumanCall
	err := h.Call(&arguments, &reply)
	assert.Nil(t, err, "wrong Call")
	assert.Equal(t, *result, reply, "wrong call")

	arguments.LockDuration = 60000
	arguments.WithProof = true
	err = h.CallLock(&arguments, &reply)
	assert.Equal(t, fault.CallerIsNotHuman, err, "wrong CallLock")
}

func TestAccountState(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := mocks.NewMockOracle(ctl)
	h := human.New(logger.New(fixtures.LogCategory), normal, o, clock)

	o.EXPECT().IsBanned(fixtures.Alice).Return(true).Times(1)
	o.EXPECT().AccountFlagged(fixtures.Alice).Return(sbt.Verified).Times(1)
	o.EXPECT().TransferLock(fixtures.Alice).Return(now + 10).Times(1)
	o.EXPECT().AccountFlagged(fixtures.Bob).Return(sbt.NoFlag).Times(1)
	o.EXPECT().TransferLock(fixtures.Bob).Return(uint64(0)).Times(1)
	o.EXPECT().ClassSet().Return(registry.ClassSet{Issuer: fixtures.Issuer1, Classes: []sbt.ClassId{1, 3}}).Times(1)

	var banned human.BannedReply
	assert.Nil(t, h.Banned(&human.AccountArguments{Account: fixtures.Alice}, &banned), "wrong Banned")
	assert.True(t, banned.Banned, "not banned")

	var flagged human.FlaggedReply
	assert.Nil(t, h.Flagged(&human.AccountArguments{Account: fixtures.Alice}, &flagged), "wrong Flagged")
	if assert.NotNil(t, flagged.Flag, "no flag") {
		assert.Equal(t, sbt.Verified, *flagged.Flag, "wrong flag")
	}
	assert.Equal(t, now+10, flagged.TransferLock, "wrong lock")

	flagged = human.FlaggedReply{}
	assert.Nil(t, h.Flagged(&human.AccountArguments{Account: fixtures.Bob}, &flagged), "wrong Flagged")
	assert.Nil(t, flagged.Flag, "unexpected flag")

	var set registry.ClassSet
	assert.Nil(t, h.ClassSet(&human.ClassSetArguments{}, &set), "wrong ClassSet")
	assert.Equal(t, []sbt.ClassId{1, 3}, set.Classes, "wrong classes")
}
