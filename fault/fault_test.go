// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/escrowd/fault"
)

var (
	ErrConfigOne     = fault.ConfigurationError("configuration one")
	ErrExistsOne     = fault.ExistsError("exists one")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
	ErrRecordOne     = fault.RecordError("record one")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		config       bool
		exists       bool
		invalid      bool
		notFound     bool
		permission   bool
		process      bool
		record       bool
		precondition bool
	}{
		{ErrConfigOne, true, false, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false, true},
		{ErrExistsTwo, false, true, false, false, false, false, false, true},
		{ErrInvalidOne, false, false, true, false, false, false, false, true},
		{ErrInvalidTwo, false, false, true, false, false, false, false, true},
		{ErrNotFoundOne, false, false, false, true, false, false, false, true},
		{ErrNotFoundTwo, false, false, false, true, false, false, false, true},
		{ErrPermissionOne, false, false, false, false, true, false, false, true},
		{ErrProcessOne, false, false, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrConfiguration(err) != e.config {
			t.Errorf("%d: expected 'configuration' == %v for err = %v", i, e.config, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsPreconditionViolation(err) != e.precondition {
			t.Errorf("%d: expected 'precondition' == %v for err = %v", i, e.precondition, err)
		}
	}
}

// the rejection reasons are part of the RPC contract
func TestStableMessages(t *testing.T) {
	if "listing does not exist" != fault.ListingNotFound.Error() {
		t.Errorf("unexpected message: %q", fault.ListingNotFound)
	}
	if "cannot buy your own token" != fault.BuyerIsSeller.Error() {
		t.Errorf("unexpected message: %q", fault.BuyerIsSeller)
	}
}
