// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every registry failure belongs to exactly one class:
//
//   PermissionError  - caller does not hold the required role
//   InvalidError     - a precondition failed before any mutation
//   ExistsError      - duplicate registration or duplicate class
//   NotFoundError    - unknown issuer, token or flag
//   ConsistencyError - ban, flag conflict or continuation violation
//   RecordError      - a stored record could not be decoded
//   ProcessError     - infrastructure failure
package fault
