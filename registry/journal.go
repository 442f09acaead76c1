// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/soulbound/events"
	"github.com/bitmark-inc/soulbound/fault"
)

// Events - journal records starting at sequence start
func (r *Registry) Events(start uint64, count int) ([]events.Record, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	r.RLock()
	defer r.RUnlock()

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, start)

	elements, err := r.pools.Events.NewFetchCursor().Seek(key).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]events.Record, len(elements))
	for i, e := range elements {
		records[i], err = events.UnpackRecord(e.Key, e.Value)
		if nil != err {
			r.log.Criticalf("event: %x  error: %s", e.Key, err)
			return nil, err
		}
	}
	return records, nil
}
