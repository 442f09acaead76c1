// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConsistencyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	CallerIsNotHuman         = PermissionError("caller is not a human")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ClassIsZero              = InvalidError("class ID must be > 0")
	ConfigurationFileMissing = NotFoundError("configuration file is missing")
	DatabaseIsNotSet         = ProcessError("database handle is not set")
	EmptyBatch               = InvalidError("empty batch")
	FromAndToAreEqual        = InvalidError("from and to must be different accounts")
	FromClassRequiresIssuer  = InvalidError("issuer must be defined if from_class is defined")
	InvalidAccount           = InvalidError("invalid account")
	InvalidConfiguration     = InvalidError("configuration must return a table")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidLimit             = InvalidError("limit must be bigger than 0")
	InvalidNetwork           = InvalidError("invalid network")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidRecord            = RecordError("invalid record")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidReferenceHash     = InvalidError("reference_hash must be 32 bytes")
	InvalidTokenMetadata     = InvalidError("reference and reference_hash must be both set or both empty")
	KeyFileAlreadyExists     = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	MustBeTestnet            = InvalidError("must be testnet")
	NotAnAdmin               = PermissionError("not an admin")
	NotAnAdminMinter         = PermissionError("only admins are allowed to mint tokens")
	NotAnIssuer              = PermissionError("must be called by an SBT issuer")
	NotAuthorizedFlagger     = PermissionError("not authorized")
	NotAvailable             = ProcessError("not available until startup completes")
	NotInitialised           = NotFoundError("not initialised")
	RateLimiting             = InvalidError("rate limiting")
	RecipientIsBanned        = ConsistencyError("receiver account is banned. Cannot start the transfer")
	RecoveryRecipient        = ConsistencyError("recovery in progress to a different recipient")
	SoulTransferFromBanned   = ConsistencyError("from account is banned. Cannot start the transfer")
	SoulTransferRecipient    = ConsistencyError("soul transfer in progress to a different recipient")
	TransactionAlreadyActive = ProcessError("transaction already in use")
	TransactionNotActive     = ProcessError("transaction is not active")
	TransferBlacklisted      = ConsistencyError("can't transfer soul from a blacklisted account to a verified account")
	TransferLocked           = ConsistencyError("soul transfer not possible: owner has a transfer lock")
	TransferVerified         = ConsistencyError("can't transfer soul from a verified account to a blacklisted account")
	UnknownFlag              = NotFoundError("account has no flag")
	UnknownIssuer            = NotFoundError("SBT issuer not found")
	UnknownToken             = NotFoundError("token not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConsistencyError) Error() string { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e PermissionError) Error() string  { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e RecordError) Error() string      { return string(e) }

// determine the class of an error
func IsErrConsistency(e error) bool { _, ok := e.(ConsistencyError); return ok }
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool  { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool      { _, ok := e.(RecordError); return ok }
