// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

import (
	"testing"
)

func TestStatusCode_OnlySuccessAndRevertCarryGas(t *testing.T) {
	statuses := []StatusCode{
		StatusSuccess,
		StatusFailure,
		StatusOutOfGas,
		StatusBadInstruction,
		StatusBadJumpDestination,
		StatusStackOverflow,
		StatusStackUnderflow,
		StatusRevert,
		StatusStaticModeError,
		StatusRejected,
		StatusInternalError,
	}

	for _, status := range statuses {
		want := status == StatusSuccess || status == StatusRevert
		if got := status.CarriesGas(); got != want {
			t.Errorf("unexpected CarriesGas for %v, wanted %t, got %t", status, want, got)
		}
	}
}

func TestResult_TakeOutputIsSingleUse(t *testing.T) {
	result := Result{
		Status: StatusSuccess,
		Output: Data("some output"),
	}

	first := result.TakeOutput()
	if string(first) != "some output" {
		t.Errorf("unexpected output, got %q", first)
	}
	if second := result.TakeOutput(); second != nil {
		t.Errorf("second take should yield nothing, got %q", second)
	}
	if result.Output != nil {
		t.Errorf("result should no longer hold an output buffer")
	}
}

func TestResult_CreatedAddressIsAbsentByDefault(t *testing.T) {
	results := []Result{
		{Status: StatusSuccess},
		{Status: StatusFailure},
		{Status: StatusRevert, GasLeft: 12},
	}
	for _, result := range results {
		if result.CreatedAddress != nil {
			t.Errorf("result with status %v should not name a created address", result.Status)
		}
	}

	created := Address{0x42}
	result := Result{Status: StatusSuccess, CreatedAddress: &created}
	if result.CreatedAddress == nil || *result.CreatedAddress != created {
		t.Errorf("created address not preserved, got %v", result.CreatedAddress)
	}
}
