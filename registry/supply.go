// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/soulbound/fault"
	"github.com/bitmark-inc/soulbound/sbt"
	"github.com/bitmark-inc/soulbound/storage"
)

// add delta to a stored count
//
// a count that reaches zero is deleted so absent and zero agree
func (u *update) adjust(pool *storage.PoolHandle, key []byte, delta int64) {
	if 0 == delta {
		return
	}
	n, _ := u.trx.GetN(pool, key)
	if delta < 0 && uint64(-delta) > n {
		fault.Corruptf("supply underflow: key: %x  count: %d  delta: %d", key, n, delta)
	}
	n = uint64(int64(n) + delta)
	if 0 == n {
		u.trx.Delete(pool, key)
		return
	}
	u.trx.PutN(pool, key, n)
}

// a token of (issuer, class) was created for or moved to owner
func (u *update) addSupply(owner string, issuer sbt.IssuerId, class sbt.ClassId) {
	pools := u.r.pools
	u.adjust(pools.SupplyByOwner, ownerIssuerKey(owner, issuer), 1)
	u.adjust(pools.SupplyByClass, classKey(issuer, class), 1)
	u.adjust(pools.SupplyByIssuer, issuerKey(issuer), 1)
}

// a token of (issuer, class) owned by owner was burned
func (u *update) removeSupply(owner string, issuer sbt.IssuerId, class sbt.ClassId) {
	pools := u.r.pools
	u.adjust(pools.SupplyByOwner, ownerIssuerKey(owner, issuer), -1)
	u.adjust(pools.SupplyByClass, classKey(issuer, class), -1)
	u.adjust(pools.SupplyByIssuer, issuerKey(issuer), -1)
}

// move n tokens of one issuer between owners
//
// class and issuer totals are unchanged by a move
func (u *update) migrateSupply(from string, to string, issuer sbt.IssuerId, n int) {
	if 0 == n {
		return
	}
	pools := u.r.pools
	u.adjust(pools.SupplyByOwner, ownerIssuerKey(from, issuer), -int64(n))
	u.adjust(pools.SupplyByOwner, ownerIssuerKey(to, issuer), int64(n))
}

// read a count outside a transaction
func count(pool *storage.PoolHandle, key []byte) uint64 {
	n, _ := pool.GetN(key)
	return n
}
