// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk soulbound token ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. issuer id    = big endian uint32 (4 bytes)
// 4. token id     = big endian uint64 (8 bytes)
// 5. class id     = big endian uint64 (8 bytes)
// 6. owner        = account name bytes ++ 0x00 when followed by more key
// 7. count        = big endian uint64 (8 bytes)
// 8. *others*     = byte values of various length
//
// Registry:
//
//   M ++ name                             - registry settings (authority, next issuer id, iah class set)
//
// Issuer directory:
//
//   I ++ account                          - issuer id
//   J ++ issuer id                        - issuer account
//
// Token store:
//
//   T ++ issuer id ++ token id            - token data
//                                           data: owner ++ version ++ metadata fields
//   B ++ owner ++ 0x00 ++ issuer id ++ class id
//                                         - balance index
//                                           data: token id
//   N ++ issuer id                        - last token id issued
//                                           data: count
//
// Supply:
//
//   O ++ owner ++ 0x00 ++ issuer id       - supply by owner, data: count
//   C ++ issuer id ++ class id            - supply by class, data: count
//   S ++ issuer id                        - supply by issuer, data: count
//
// Ban/flag:
//
//   X ++ account                          - banned account, data: 0x01
//   F ++ account                          - account flag, data: flag byte
//   G ++ account                          - authorized flagger, data: 0x01
//   A ++ account                          - admin minter (testnet), data: 0x01
//
// Continuation ledger:
//
//   W ++ owner                            - soul transfer in progress
//                                           data: recipient ++ resume issuer id ++ resume class id
//   R ++ issuer id ++ owner               - recovery in progress
//                                           data: recipient ++ resume class id
//   L ++ owner                            - soul transfer lock, data: expiry ms
//
// Events:
//
//   E ++ sequence                         - journal of emitted events
//                                           data: digest ++ event text
//
// Reserved keys (no pool prefix):
//
//   0x00 ++ "VERSION"                     - database version
//   0x00 ++ "USAGE"                       - total bytes used by all pools
package storage
