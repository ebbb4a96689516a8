// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

// StatusCode describes the outcome of a code execution. Status codes are
// data, never a thrown fault; the numeric values are part of the binary
// contract between independently built Hosts and VMs.
type StatusCode int

const (
	StatusSuccess            StatusCode = 0 // execution finished with success
	StatusFailure            StatusCode = 1 // generic execution failure
	StatusOutOfGas           StatusCode = 2
	StatusBadInstruction     StatusCode = 3
	StatusBadJumpDestination StatusCode = 4
	StatusStackOverflow      StatusCode = 5
	StatusStackUnderflow     StatusCode = 6
	StatusRevert             StatusCode = 7 // execution terminated by an explicit revert
	StatusStaticModeError    StatusCode = 8 // state-mutating operation in a static call

	// StatusRejected signals that the VM is not able or not willing to
	// execute the given code or message. The Host may retry the same
	// request against a different VM implementation.
	StatusRejected StatusCode = -1

	// StatusInternalError signals an implementation defect, non-recoverable
	// for this call. The contract currently carries no structured detail
	// beyond the code itself; producers may attach diagnostics to the
	// result's Private slot.
	StatusInternalError StatusCode = -2
)

// CarriesGas reports whether results with this status carry a meaningful
// amount of remaining gas. For all other statuses GasLeft must be zero.
func (s StatusCode) CarriesGas() bool {
	return s == StatusSuccess || s == StatusRevert
}

// Result is the outcome of one Execute call, returned by value. The result
// exclusively owns its output buffer; there is no separate release step, the
// buffer is reclaimed by the garbage collector once the result goes out of
// scope.
type Result struct {
	// Status is the execution status code.
	Status StatusCode

	// GasLeft is the amount of gas remaining after the execution. It is
	// meaningful only if Status.CarriesGas() holds and must be zero for
	// every other status.
	GasLeft Gas

	// Output contains the data produced by the execution: return data on
	// success, revert data on an explicit revert. Use TakeOutput to consume
	// it destructively.
	Output Data

	// CreatedAddress names the contract created by a successful Create
	// message. It is nil for every other outcome.
	CreatedAddress *Address

	// Private is a slot for implementation-private bookkeeping of whichever
	// party produced the result. It never crosses the boundary with defined
	// meaning and must not be interpreted by the consumer.
	Private any
}

// TakeOutput moves the output buffer out of the result, leaving nil behind.
// It allows a consumer to make single-use consumption of the output explicit:
// a second call yields nil.
func (r *Result) TakeOutput() Data {
	out := r.Output
	r.Output = nil
	return out
}
