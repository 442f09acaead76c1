// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/sbt"
)

// run a soul transfer to completion, returning the progress of each call
func (h *harness) transferAll(owner string, recipient string, limit int) []Progress {
	calls := make([]Progress, 0)
	for i := 0; i < 1000; i += 1 {
		p, err := h.r.SoulTransfer(callBy(owner), recipient, limit, nil)
		if nil != err {
			h.t.Fatalf("soul transfer call: %d  error: %s", i+1, err)
		}
		calls = append(calls, p)
		if p.Completed {
			return calls
		}
	}
	h.t.Fatalf("soul transfer never completed")
	return nil
}

func TestSoulTransferBatches(t *testing.T) {
	items := []struct {
		tokens int
		limit  int
		moved  []int
	}{
		{50, 10, []int{10, 10, 10, 10, 10}},
		{25, 10, []int{10, 10, 5}},
		{3, 10, []int{3}},
		{10, 10, []int{10}},
		{0, 10, []int{0}},
		{4, 1, []int{1, 1, 1, 1}},
	}

	for i, item := range items {
		h := setup(t)
		h.addIssuers(fixtures.Issuer1, fixtures.Issuer2, fixtures.Issuer3)

		// spread the tokens over several issuers
		issuers := []string{fixtures.Issuer1, fixtures.Issuer2, fixtures.Issuer3}
		perIssuer := make([]int, len(issuers))
		for n := 0; n < item.tokens; n += 1 {
			perIssuer[n%len(issuers)] += 1
		}
		for j, issuer := range issuers {
			if 0 != perIssuer[j] {
				h.mint(issuer, fixtures.Alice, classRange(1, perIssuer[j])...)
			}
		}
		// bob already holds tokens that must stay
		h.mint(fixtures.Issuer1, fixtures.Bob, 1000)

		calls := h.transferAll(fixtures.Alice, fixtures.Bob, item.limit)
		moved := make([]int, len(calls))
		for j, c := range calls {
			moved[j] = c.Moved
			assert.Equal(t, j == len(calls)-1, c.Completed, "%d: completed flag of call: %d", i, j)
		}
		assert.Equal(t, item.moved, moved, "%d: moved per call", i)

		assert.True(t, h.r.IsBanned(fixtures.Alice), "%d: owner not banned", i)
		assert.False(t, h.r.IsBanned(fixtures.Bob), "%d: recipient banned", i)
		assert.Equal(t, []string{
			`EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"sbt_soul_transfer","data":{"from":"alice.near","to":"bob.near"}}`,
		}, h.sink.named("sbt_soul_transfer"), "%d: completion events", i)

		total := uint64(0)
		for j, issuer := range issuers {
			assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Alice, issuer, nil), "%d: alice supply", i)
			expected := uint64(perIssuer[j])
			if fixtures.Issuer1 == issuer {
				expected += 1
			}
			assert.Equal(t, expected, h.r.SupplyByOwner(fixtures.Bob, issuer, nil), "%d: bob supply from: %s", i, issuer)
			total += h.r.Supply(issuer)
		}
		assert.Equal(t, uint64(item.tokens+1), total, "%d: total supply", i)
		h.checkSupply()
		h.teardown()
	}
}

func TestSoulTransferEmptyOwner(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	p, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, Progress{Moved: 0, Completed: true}, p, "progress")
	assert.True(t, h.r.IsBanned(fixtures.Alice), "not banned")
	assert.Len(t, h.sink.named("sbt_soul_transfer"), 1, "completion events")

	// nothing to resume and the owner is banned now
	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.Equal(t, fault.SoulTransferFromBanned, err, "second transfer")
	assert.Len(t, h.sink.named("sbt_soul_transfer"), 1, "completion emitted twice")
}

func TestSoulTransferFrozenQueries(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, classRange(1, 5)...)

	p, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 2, nil)
	assert.Nil(t, err, "first call")
	assert.False(t, p.Completed, "completed early")

	assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, nil), "supply while frozen")
	class := sbt.ClassId(5)
	assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, &class), "class supply while frozen")
	owned, err := h.r.TokensByOwner(OwnerQuery{Account: fixtures.Alice}, now)
	assert.Nil(t, err, "tokens by owner")
	assert.Empty(t, owned, "tokens while frozen")

	// supply stays consistent at every chunk boundary
	h.checkSupply()

	// a different recipient cannot take over
	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Carol, 2, nil)
	assert.Equal(t, fault.SoulTransferRecipient, err, "other recipient")

	h.transferAll(fixtures.Alice, fixtures.Bob, 2)
	owned, err = h.r.TokensByOwner(OwnerQuery{Account: fixtures.Bob}, now)
	assert.Nil(t, err, "tokens by owner")
	if assert.Len(t, owned, 1, "issuers") {
		assert.Len(t, owned[0].Tokens, 5, "bob tokens")
	}
	h.checkSupply()
}

func TestSoulTransferRecipientChecks(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	_, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Alice, 10, nil)
	assert.Equal(t, fault.FromAndToAreEqual, err, "self transfer")

	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), "x", 10, nil)
	assert.Equal(t, fault.InvalidAccount, err, "invalid recipient")

	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, -1, nil)
	assert.Equal(t, fault.InvalidLimit, err, "negative limit")

	// carol bans herself
	_, err = h.r.SoulTransfer(callBy(fixtures.Carol), fixtures.Bob, 10, nil)
	assert.Nil(t, err, "carol transfer")

	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Carol, 10, nil)
	assert.Equal(t, fault.RecipientIsBanned, err, "banned recipient")
	assert.False(t, h.r.IsBanned(fixtures.Alice), "failed call banned the owner")

	// the recipient already holds the same class
	h.mint(fixtures.Issuer1, fixtures.Alice, 1)
	h.mint(fixtures.Issuer1, fixtures.Bob, 1)
	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.True(t, fault.IsErrConsistency(err), "wrong error: %v", err)
	assert.False(t, h.r.IsBanned(fixtures.Alice), "failed call banned the owner")
	h.checkSupply()
}

func TestSoulTransferDeposit(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, 1)

	call := callBy(fixtures.Alice)
	call.Deposit = nil
	_, err := h.r.SoulTransfer(call, fixtures.Bob, 10, nil)
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
	assert.True(t, strings.HasPrefix(err.Error(), "not enough NEAR storage deposit, required: "), "message: %s", err)
	assert.False(t, h.r.IsBanned(fixtures.Alice), "failed call banned the owner")
}

func TestSoulTransferFlags(t *testing.T) {
	items := []struct {
		owner     sbt.AccountFlag
		recipient sbt.AccountFlag
		err       error
		result    sbt.AccountFlag
	}{
		{sbt.Blacklisted, sbt.Verified, fault.TransferBlacklisted, sbt.Verified},
		{sbt.Verified, sbt.Blacklisted, fault.TransferVerified, sbt.Blacklisted},
		{sbt.Verified, sbt.NoFlag, nil, sbt.Verified},
		{sbt.Blacklisted, sbt.NoFlag, nil, sbt.Blacklisted},
		{sbt.Verified, sbt.Verified, nil, sbt.Verified},
		{sbt.Blacklisted, sbt.Blacklisted, nil, sbt.Blacklisted},
		{sbt.NoFlag, sbt.Verified, nil, sbt.Verified},
		{sbt.NoFlag, sbt.NoFlag, nil, sbt.NoFlag},
	}

	for i, item := range items {
		h := setup(t)
		flagger := callBy(fixtures.Flagger)
		if sbt.NoFlag != item.owner {
			assert.Nil(t, h.r.Flag(flagger, item.owner, []string{fixtures.Alice}), "%d: flag owner", i)
		}
		if sbt.NoFlag != item.recipient {
			assert.Nil(t, h.r.Flag(flagger, item.recipient, []string{fixtures.Bob}), "%d: flag recipient", i)
		}

		_, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
		assert.Equal(t, item.err, err, "%d: transfer error", i)
		assert.Equal(t, item.result, h.r.AccountFlagged(fixtures.Bob), "%d: recipient flag", i)
		assert.Equal(t, item.owner, h.r.AccountFlagged(fixtures.Alice), "%d: owner flag changed", i)
		assert.Equal(t, nil == item.err, h.r.IsBanned(fixtures.Alice), "%d: owner ban", i)
		h.teardown()
	}
}

func TestSoulTransferLock(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, 1, 3)

	_, err := h.r.IsHumanCallLock(callBy(fixtures.Alice), "poll.near", "vote", "{}", 1000, false)
	assert.Nil(t, err, "lock")

	// a shorter lock keeps the longer one
	_, err = h.r.IsHumanCallLock(callBy(fixtures.Alice), "poll.near", "vote", "{}", 10, false)
	assert.Nil(t, err, "short lock")
	assert.Equal(t, now+1000, h.r.TransferLock(fixtures.Alice), "lock shortened")

	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.Equal(t, fault.TransferLocked, err, "locked transfer")
	assert.False(t, h.r.IsBanned(fixtures.Alice), "locked owner banned")

	call := callBy(fixtures.Alice)
	call.Now = now + 1000
	p, err := h.r.SoulTransfer(call, fixtures.Bob, 10, nil)
	assert.Nil(t, err, "transfer after lock")
	assert.Equal(t, Progress{Moved: 2, Completed: true}, p, "progress")
}

func TestSoulTransferLockSaturates(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, 1, 3)

	_, err := h.r.IsHumanCallLock(callBy(fixtures.Alice), "poll.near", "vote", "{}", math.MaxUint64, false)
	assert.Nil(t, err, "lock")
	assert.Equal(t, uint64(math.MaxUint64), h.r.TransferLock(fixtures.Alice), "lock wrapped")

	_, err = h.r.IsHumanCallLock(callBy(fixtures.Alice), "poll.near", "vote", "{}", math.MaxUint64-now+1, false)
	assert.Nil(t, err, "second lock")
	assert.Equal(t, uint64(math.MaxUint64), h.r.TransferLock(fixtures.Alice), "lock shortened")

	call := callBy(fixtures.Alice)
	call.Now = math.MaxUint64 - 1
	_, err = h.r.SoulTransfer(call, fixtures.Bob, 10, nil)
	assert.Equal(t, fault.TransferLocked, err, "locked transfer")
	assert.False(t, h.r.IsBanned(fixtures.Alice), "locked owner banned")
}

func TestSoulTransferLaterClassConflict(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, classRange(1, 20)...)
	h.mint(fixtures.Issuer1, fixtures.Bob, 15)

	// the duplicate lies beyond the first batch
	_, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.True(t, fault.IsErrConsistency(err), "wrong error: %v", err)
	assert.False(t, h.r.IsBanned(fixtures.Alice), "failed call banned the owner")
	assert.Equal(t, uint64(20), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, nil), "alice supply")
	h.checkSupply()
}

func TestSoulTransferClassGainedDuringTransfer(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, classRange(1, 20)...)

	p, err := h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.Nil(t, err, "first call")
	assert.Equal(t, Progress{Moved: 10, Completed: false}, p, "first call")

	// bob receives class 15 before the transfer reaches it
	h.mint(fixtures.Issuer1, fixtures.Bob, 15)

	p, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Bob, 10, nil)
	assert.Nil(t, err, "second call")
	assert.Equal(t, Progress{Moved: 10, Completed: true}, p, "second call")

	assert.Equal(t, []string{
		`EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"sbt_burn","data":{"issuer":"issuer1.near","tokens":[15]}}`,
	}, h.sink.named("sbt_burn"), "burn events")
	assert.Len(t, h.sink.named("sbt_soul_transfer"), 1, "completion events")

	_, ok := h.r.Token(fixtures.Issuer1, 15)
	assert.False(t, ok, "duplicate not burned")
	token, ok := h.r.Token(fixtures.Issuer1, 21)
	if assert.True(t, ok, "bob token") {
		assert.Equal(t, fixtures.Bob, token.Owner, "bob token owner")
	}

	assert.Equal(t, uint64(20), h.r.SupplyByOwner(fixtures.Bob, fixtures.Issuer1, nil), "bob supply")
	assert.Equal(t, uint64(20), h.r.Supply(fixtures.Issuer1), "issuer supply")
	assert.Equal(t, uint64(1), h.r.SupplyByClass(fixtures.Issuer1, 15), "class supply")
	h.checkSupply()
}
