// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/sbt"
)

func TestRecoverBatches(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1, fixtures.Issuer2)

	h.mint(fixtures.Issuer1, fixtures.Alice, classRange(1, 7)...)
	h.mint(fixtures.Issuer2, fixtures.Alice, classRange(1, 4)...)

	moved := make([]int, 0)
	for i := 0; i < 10; i += 1 {
		p, err := h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 3, nil)
		assert.Nil(t, err, "recover call: %d", i+1)
		moved = append(moved, p.Moved)
		if p.Completed {
			break
		}
		h.checkSupply()
	}
	assert.Equal(t, []int{3, 3, 1}, moved, "moved per call")

	assert.False(t, h.r.IsBanned(fixtures.Alice), "recovery banned the source")
	assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, nil), "alice issuer1 supply")
	assert.Equal(t, uint64(7), h.r.SupplyByOwner(fixtures.Bob, fixtures.Issuer1, nil), "bob issuer1 supply")

	// tokens of other issuers stay
	assert.Equal(t, uint64(4), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer2, nil), "alice issuer2 supply")

	assert.Equal(t, []string{
		`EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"sbt_recover","data":[{"issuer":"issuer1.near","old_owner":"alice.near","new_owner":"bob.near"}]}`,
	}, h.sink.named("sbt_recover"), "recover events")
	h.checkSupply()
}

func TestRecoverNothingToMove(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	p, err := h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 3, nil)
	assert.Nil(t, err, "recover")
	assert.Equal(t, Progress{Moved: 0, Completed: true}, p, "progress")
	assert.Empty(t, h.sink.named("sbt_recover"), "event for an empty recovery")
	assert.False(t, h.r.IsBanned(fixtures.Alice), "recovery banned the source")
}

func TestRecoverResumedToEmpty(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, 1, 2)

	p, err := h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 1, nil)
	assert.Nil(t, err, "first call")
	assert.False(t, p.Completed, "completed early")

	// the remaining token is burned before the recovery resumes
	assert.Nil(t, h.r.Revoke(callBy(fixtures.Issuer1), []sbt.TokenId{2}, true), "burn")

	p, err = h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 1, nil)
	assert.Nil(t, err, "second call")
	assert.Equal(t, Progress{Moved: 0, Completed: true}, p, "progress")
	assert.Len(t, h.sink.named("sbt_recover"), 1, "resumed recovery must announce")
	h.checkSupply()
}

func TestRecoverRejections(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, 1, 2, 3)

	_, err := h.r.Recover(callBy(fixtures.Issuer2), fixtures.Alice, fixtures.Bob, 1, nil)
	assert.Equal(t, fault.NotAnIssuer, err, "not an issuer")

	_, err = h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Alice, 1, nil)
	assert.Equal(t, fault.FromAndToAreEqual, err, "same account")

	poor := callBy(fixtures.Issuer1)
	poor.Deposit = nil
	_, err = h.r.Recover(poor, fixtures.Alice, "a-much-longer-recipient-name.near", 10, nil)
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	_, err = h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 1, nil)
	assert.Nil(t, err, "first call")
	_, err = h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Carol, 1, nil)
	assert.Equal(t, fault.RecoveryRecipient, err, "other recipient")
	h.checkSupply()
}

func TestRecoverLaterClassConflict(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)
	h.mint(fixtures.Issuer1, fixtures.Alice, classRange(1, 20)...)
	h.mint(fixtures.Issuer1, fixtures.Bob, 15)

	_, err := h.r.Recover(callBy(fixtures.Issuer1), fixtures.Alice, fixtures.Bob, 10, nil)
	assert.True(t, fault.IsErrConsistency(err), "wrong error: %v", err)
	assert.Equal(t, uint64(20), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, nil), "alice supply")
	assert.Equal(t, uint64(1), h.r.SupplyByOwner(fixtures.Bob, fixtures.Issuer1, nil), "bob supply")
	h.checkSupply()
}
