// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/fixtures"
	"github.com/bitmark-inc/soulbound/sbt"
)

func TestMintAssignsIdsInOrder(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	spec := []sbt.TokenSpec{
		{Owner: fixtures.Bob, Metadata: []sbt.TokenMetadata{metadata(1), metadata(2)}},
		{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{metadata(1)}},
	}
	tokens, err := h.r.Mint(callBy(fixtures.Issuer1), spec, nil)
	assert.Nil(t, err, "mint")
	assert.Equal(t, []sbt.TokenId{1, 2, 3}, tokens, "token ids")

	expected := `EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"sbt_mint","data":[` +
		`{"issuer":"issuer1.near","owner":"alice.near","tokens":[3]},` +
		`{"issuer":"issuer1.near","owner":"bob.near","tokens":[1,2]}]}`
	assert.Equal(t, []string{expected}, h.sink.named("sbt_mint"), "mint event")

	token, ok := h.r.Token(fixtures.Issuer1, 2)
	assert.True(t, ok, "token 2")
	assert.Equal(t, fixtures.Bob, token.Owner, "owner")
	assert.Equal(t, sbt.ClassId(2), token.Metadata.Class, "class")

	assert.Equal(t, uint64(3), h.r.Supply(fixtures.Issuer1), "issuer supply")
	assert.Equal(t, uint64(2), h.r.SupplyByClass(fixtures.Issuer1, 1), "class supply")
	assert.Equal(t, uint64(2), h.r.SupplyByOwner(fixtures.Bob, fixtures.Issuer1, nil), "owner supply")
	h.checkSupply()
}

func TestMintTokenIdsNeverReused(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1, fixtures.Issuer2)

	first := h.mint(fixtures.Issuer1, fixtures.Alice, 1)
	assert.Nil(t, h.r.Revoke(callBy(fixtures.Issuer1), first, true), "burn")

	second := h.mint(fixtures.Issuer1, fixtures.Alice, 1)
	assert.True(t, second[0] > first[0], "id reused: %d after %d", second[0], first[0])

	// ids are per issuer
	other := h.mint(fixtures.Issuer2, fixtures.Alice, 1)
	assert.Equal(t, sbt.TokenId(1), other[0], "second issuer first id")
	h.checkSupply()
}

func TestMintDuplicateClass(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	h.mint(fixtures.Issuer1, fixtures.Alice, 1)
	records := len(h.sink.records)

	// a later call
	_, err := h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{
		{Owner: fixtures.Bob, Metadata: []sbt.TokenMetadata{metadata(1)}},
		{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{metadata(1)}},
	}, nil)
	assert.True(t, fault.IsErrExists(err), "wrong error: %v", err)
	assert.Equal(t, "alice.near already has SBT of class 1", err.Error(), "message")

	// within one call
	_, err = h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{
		{Owner: fixtures.Carol, Metadata: []sbt.TokenMetadata{metadata(5), metadata(5)}},
	}, nil)
	assert.True(t, fault.IsErrExists(err), "wrong error: %v", err)

	// nothing from the failed calls survived
	assert.Equal(t, records, len(h.sink.records), "events leaked")
	assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Bob, fixtures.Issuer1, nil), "bob supply")
	assert.Equal(t, uint64(0), h.r.SupplyByOwner(fixtures.Carol, fixtures.Issuer1, nil), "carol supply")
	assert.Equal(t, uint64(1), h.r.Supply(fixtures.Issuer1), "issuer supply")

	next := h.mint(fixtures.Issuer1, fixtures.Bob, 1)
	assert.Equal(t, []sbt.TokenId{2}, next, "token id after failed calls")
	h.checkSupply()
}

func TestMintRejections(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	one := []sbt.TokenSpec{{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{metadata(1)}}}

	_, err := h.r.Mint(callBy(fixtures.Issuer2), one, nil)
	assert.Equal(t, fault.NotAnIssuer, err, "unregistered issuer")

	_, err = h.r.Mint(callBy(fixtures.Issuer1), nil, nil)
	assert.Equal(t, fault.EmptyBatch, err, "empty")

	_, err = h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{metadata(0)}}}, nil)
	assert.Equal(t, fault.ClassIsZero, err, "zero class")

	reference := "https://example.org/token.json"
	_, err = h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{{Class: 1, Reference: &reference}}}}, nil)
	assert.Equal(t, fault.InvalidTokenMetadata, err, "reference without hash")

	_, err = h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{{Owner: "Not Valid", Metadata: []sbt.TokenMetadata{metadata(1)}}}, nil)
	assert.Equal(t, fault.InvalidAccount, err, "invalid owner")

	poor := callBy(fixtures.Issuer1)
	poor.Deposit = uint256.NewInt(1)
	_, err = h.r.Mint(poor, one, nil)
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
	assert.Equal(t, "not enough NEAR storage deposit, required: 9000000000000000000000 yoctoNEAR (0.009 NEAR)", err.Error(), "deposit message")

	exact := callBy(fixtures.Issuer1)
	exact.Deposit = h.r.MintCost(1)
	_, err = h.r.Mint(exact, one, nil)
	assert.Nil(t, err, "exact deposit")

	// soul transfer bans alice
	_, err = h.r.SoulTransfer(callBy(fixtures.Alice), fixtures.Carol, 0, nil)
	assert.Nil(t, err, "soul transfer")
	_, err = h.r.Mint(callBy(fixtures.Issuer1), []sbt.TokenSpec{{Owner: fixtures.Alice, Metadata: []sbt.TokenMetadata{metadata(2)}}}, nil)
	assert.True(t, fault.IsErrConsistency(err), "wrong error: %v", err)
	assert.Equal(t, "account alice.near is banned", err.Error(), "banned message")
	h.checkSupply()
}

func TestRenew(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1, fixtures.Issuer2)

	tokens := h.mint(fixtures.Issuer1, fixtures.Alice, 1, 2)
	expiry := now + 1000

	err := h.r.Renew(callBy(fixtures.Issuer1), tokens, expiry)
	assert.Nil(t, err, "renew")
	for _, id := range tokens {
		token, _ := h.r.Token(fixtures.Issuer1, id)
		if assert.NotNil(t, token.Metadata.ExpiresAt, "expiry of: %d", id) {
			assert.Equal(t, expiry, *token.Metadata.ExpiresAt, "expiry of: %d", id)
		}
	}
	assert.Equal(t,
		[]string{`EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"sbt_renew","data":{"issuer":"issuer1.near","tokens":[1,2]}}`},
		h.sink.named("sbt_renew"), "renew event")

	// an unknown token stops the whole call
	err = h.r.Renew(callBy(fixtures.Issuer1), []sbt.TokenId{1, 99}, expiry+1)
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)
	token, _ := h.r.Token(fixtures.Issuer1, 1)
	assert.Equal(t, expiry, *token.Metadata.ExpiresAt, "partial renew")

	// another issuer cannot renew tokens it did not issue
	err = h.r.Renew(callBy(fixtures.Issuer2), tokens, expiry)
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)
}

func TestRevokeSoft(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	tokens := h.mint(fixtures.Issuer1, fixtures.Alice, 1, 2)

	err := h.r.Revoke(callBy(fixtures.Issuer1), tokens[:1], false)
	assert.Nil(t, err, "revoke")
	assert.Empty(t, h.sink.named("sbt_burn"), "burn event on soft revoke")
	assert.Len(t, h.sink.named("sbt_revoke"), 1, "revoke event")

	later := now + 1
	all, err := h.r.Tokens(TokensQuery{Issuer: fixtures.Issuer1, WithExpired: true}, later)
	assert.Nil(t, err, "tokens with expired")
	assert.Len(t, all, 2, "with expired")

	live, err := h.r.Tokens(TokensQuery{Issuer: fixtures.Issuer1}, later)
	assert.Nil(t, err, "tokens")
	if assert.Len(t, live, 1, "live") {
		assert.Equal(t, tokens[1], live[0].Token, "live token")
	}

	// soft revoke keeps the token counted
	assert.Equal(t, uint64(2), h.r.Supply(fixtures.Issuer1), "supply")
	h.checkSupply()
}

func TestRevokeBurn(t *testing.T) {
	h := setup(t)
	defer h.teardown()
	h.addIssuers(fixtures.Issuer1)

	tokens := h.mint(fixtures.Issuer1, fixtures.Alice, 1, 2)
	start := len(h.sink.records)

	err := h.r.Revoke(callBy(fixtures.Issuer1), tokens[:1], true)
	assert.Nil(t, err, "burn")

	texts := make([]string, 0)
	for _, r := range h.sink.records[start:] {
		texts = append(texts, r.Text)
	}
	if assert.Len(t, texts, 2, "events") {
		assert.True(t, strings.Contains(texts[0], `"event":"sbt_burn"`), "first event: %s", texts[0])
		assert.True(t, strings.Contains(texts[1], `"event":"sbt_revoke"`), "second event: %s", texts[1])
	}

	_, ok := h.r.Token(fixtures.Issuer1, tokens[0])
	assert.False(t, ok, "burned token still present")

	all, err := h.r.Tokens(TokensQuery{Issuer: fixtures.Issuer1, WithExpired: true}, now)
	assert.Nil(t, err, "tokens")
	assert.Len(t, all, 1, "burned token listed")

	assert.Equal(t, uint64(1), h.r.Supply(fixtures.Issuer1), "issuer supply")
	assert.Equal(t, uint64(0), h.r.SupplyByClass(fixtures.Issuer1, 1), "class supply")
	assert.Equal(t, uint64(1), h.r.SupplyByOwner(fixtures.Alice, fixtures.Issuer1, nil), "owner supply")

	// the class is free again
	h.mint(fixtures.Issuer1, fixtures.Alice, 1)
	h.checkSupply()
}
