// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the soulbound token ledger
//
// Every mutating call runs under the registry lock inside a single
// storage transaction. On error the transaction is aborted so no
// partial state (tokens, indexes, counts, bans or events) survives.
//
// Indexes kept in step with the token store:
//
//   balances          owner, issuer, class -> token id
//   supply by owner   owner, issuer        -> count
//   supply by class   issuer, class        -> count
//   supply by issuer  issuer               -> count
//
// Soul transfer and recovery are batched: each call moves at most
// limit balance entries and records the last one moved so the next
// call resumes after it. A call that finds no more than limit entries
// completes the operation and removes the record.
package registry
