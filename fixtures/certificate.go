// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var tlsPair struct {
	once        sync.Once
	certificate string
	key         string
}

// TLSPair - a PEM certificate and key for 127.0.0.1, generated once
func TLSPair() (string, string) {
	tlsPair.once.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("fixtures", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic("fixtures: certificate: " + err.Error())
		}
		tlsPair.certificate = string(cert)
		tlsPair.key = string(key)
	})
	return tlsPair.certificate, tlsPair.key
}
