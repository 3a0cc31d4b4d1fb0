// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// classes of errors
//
// each class corresponds to one protocol failure code so that the RPC
// layer can report a stable numeric code for any error instance
type (
	AuthorityError  GenericError // caller lacks protocol authority
	NotFoundError   GenericError // no such record
	ExistsError     GenericError // duplicate resource
	LengthError     GenericError // text field outside its length bounds
	RangeError      GenericError // numeric field outside its range
	PermissionError GenericError // caller has no access grant
	OwnershipError  GenericError // caller is not the current owner
	ForbiddenError  GenericError // record is under emergency restriction
	RecordError     GenericError // malformed descriptor collection
	InvalidError    GenericError // malformed request data
	ProcessError    GenericError // internal processing problem
)

// protocol failure codes
const (
	CodeAuthorityRequired     = 300
	CodeResourceNotFound      = 301
	CodeDuplicateResource     = 302
	CodeFieldLengthViolation  = 303
	CodeNumericRangeViolation = 304
	CodePermissionDenied      = 305
	CodeOwnershipMismatch     = 306
	CodeAccessForbidden       = 307
	CodeMetadataFormatError   = 308
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	AuthorityRequired             = AuthorityError("protocol authority required")
	CannotDecodeIdentity          = InvalidError("cannot decode identity")
	CertificateFileExists         = ExistsError("certificate file already exists")
	DataInconsistent              = ProcessError("data is inconsistent")
	DescriptorCountOutOfRange     = RecordError("descriptor count out of range")
	DescriptorTooLong             = RecordError("descriptor too long")
	DescriptorTooShort            = RecordError("descriptor too short")
	InvalidCount                  = InvalidError("invalid count")
	InvalidIdentityChecksum       = InvalidError("invalid identity checksum")
	InvalidIpAddress              = InvalidError("invalid ip Address")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	KeyFileExists                 = ExistsError("key file already exists")
	LocationTooLong               = LengthError("location too long")
	LocationTooShort              = LengthError("location too short")
	MissingParameters             = InvalidError("missing parameters")
	NotAvailableDuringSynchronise = InvalidError("not available during synchronise")
	NotInitialised                = ProcessError("not initialised")
	OwnershipMismatch             = OwnershipError("caller is not the record owner")
	PermissionDenied              = PermissionError("no access grant for caller")
	ProduceNameTooLong            = LengthError("produce name too long")
	ProduceNameTooShort           = LengthError("produce name too short")
	RateLimiting                  = InvalidError("rate limiting")
	RecordAlreadyExists           = ExistsError("record already exists")
	RecordIsLocked                = ForbiddenError("record is under emergency restriction")
	RecordNotFound                = NotFoundError("record not found")
	SelfRevocationNotAllowed      = AuthorityError("cannot revoke own access")
	TransactionInUse              = ProcessError("transaction already in use")
	TruncatedRecord               = RecordError("record data is truncated")
	VolumeOutOfRange              = RangeError("production volume out of range")
	WrongRecordTag                = RecordError("wrong record tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorityError) Error() string  { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e RangeError) Error() string      { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e OwnershipError) Error() string  { return string(e) }
func (e ForbiddenError) Error() string  { return string(e) }
func (e RecordError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthority(e error) bool  { _, ok := e.(AuthorityError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrRange(e error) bool      { _, ok := e.(RangeError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrOwnership(e error) bool  { _, ok := e.(OwnershipError); return ok }
func IsErrForbidden(e error) bool  { _, ok := e.(ForbiddenError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }

// Code - the protocol failure code for an error
//
// zero for errors outside the protocol enumeration
func Code(e error) int {
	switch e.(type) {
	case AuthorityError:
		return CodeAuthorityRequired
	case NotFoundError:
		return CodeResourceNotFound
	case ExistsError:
		return CodeDuplicateResource
	case LengthError:
		return CodeFieldLengthViolation
	case RangeError:
		return CodeNumericRangeViolation
	case PermissionError:
		return CodePermissionDenied
	case OwnershipError:
		return CodeOwnershipMismatch
	case ForbiddenError:
		return CodeAccessForbidden
	case RecordError:
		return CodeMetadataFormatError
	default:
		return 0
	}
}
