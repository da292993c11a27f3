// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyCreated               = ExistsError("custodian already created")
	AlreadyInitialised           = ExistsError("already initialised")
	AmountOverflow               = ProcessError("amount overflow")
	AssetNotHeld                 = ProcessError("asset balance insufficient")
	BuyerIsSeller                = PermissionError("cannot buy your own token")
	CallerNotAdmin               = PermissionError("only admin can withdraw commission")
	CallerNotSeller              = PermissionError("only seller can change listing")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CommissionOverflow           = ProcessError("commission accumulator overflow")
	CryptoFailed                 = ProcessError("encrypt/decrypt failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	InsufficientFunds            = ProcessError("payment balance insufficient")
	InvalidAccount               = InvalidError("invalid account")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidConfiguration         = ConfigurationError("configuration must return a table")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDepositAmount         = InvalidError("must transfer exactly 1 token")
	InvalidDepositReceiver       = InvalidError("token must be sent to custodian")
	InvalidDepositSender         = InvalidError("token sender must be caller")
	InvalidHoldingsDocument      = InvalidError("invalid holdings document")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidPasswordLength        = InvalidError("password must be at least 8 characters")
	InvalidPaymentReceiver       = InvalidError("payment must be to custodian")
	InvalidPaymentSender         = PermissionError("payment sender must be caller")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrice                 = InvalidError("price must be positive")
	InvalidRequestTime           = InvalidError("request timestamp outside allowed window")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidTokenId               = InvalidError("invalid token id")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	ListingAlreadyExists         = ExistsError("listing already exists")
	ListingIsNotActive           = InvalidError("listing is not active")
	ListingNotFound              = NotFoundError("listing does not exist")
	ListingSellerMismatch        = PermissionError("seller mismatch")
	MissingParameters            = InvalidError("missing parameters")
	NoCommissionToWithdraw       = InvalidError("no commission to withdraw")
	NotAvailableOnThisChain      = PermissionError("not available on this chain")
	NotCreated                   = NotFoundError("custodian not created")
	NotInitialised               = NotFoundError("not initialised")
	NotPrivateKey                = InvalidError("identity has no private key")
	PasswordMismatch             = InvalidError("passwords do not match")
	PaymentBelowPrice            = InvalidError("payment insufficient")
	PaymentBelowRegistrationCost = InvalidError("payment must cover asset registration cost")
	PaymentBelowRent             = InvalidError("rent payment insufficient for listing storage")
	RateLimiting                 = InvalidError("rate limiting")
	ReceiverNotRegistered        = ProcessError("receiver not registered for token")
	RecordKeyMalformed           = RecordError("listing key malformed")
	RecordSellerMismatch         = RecordError("listing seller does not match key")
	RecordValueMalformed         = RecordError("listing value malformed")
	RentMismatch                 = ConfigurationError("rent does not match storage cost")
	RequestReplayed              = ExistsError("request already processed")
	TokenNotFound                = NotFoundError("token does not exist")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotInUse          = ProcessError("transaction not in use")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PermissionError) Error() string    { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrConfiguration(e error) bool { _, ok := e.(ConfigurationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool    { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }

// IsPreconditionViolation - true for the classes that reject a request
// because of its arguments or the current state
func IsPreconditionViolation(e error) bool {
	return IsErrInvalid(e) || IsErrNotFound(e) || IsErrExists(e) || IsErrPermission(e)
}
