// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

// CallKind is an enum enabling the differentiation of the different types
// of call-like instructions.
type CallKind int

const (
	Call         CallKind = iota // regular message call
	DelegateCall                 // the value parameter is ignored
	CallCode
	Create // deploys new contract code
)

// Message describes one call or create request crossing the boundary,
// including zero-depth calls from a transaction origin. The Host owns the
// message data for the duration of a call; it is lent to the VM, not
// transferred.
type Message struct {
	// Destination is the account the message is addressed to. For Create
	// it names the address the new contract is deployed at.
	Destination Address

	// Sender is the account the message originates from.
	Sender Address

	// Value is the amount of currency transferred with the message.
	Value Value

	// Input is the call input data, borrowed for the duration of the call.
	Input Data

	// CodeHash optionally names the hash of the destination's code. It is
	// nil when not specified.
	CodeHash *Hash

	// Gas is the budget available for executing the message.
	Gas Gas

	// Depth is the current call depth; zero-depth messages come directly
	// from a transaction.
	Depth int

	// Kind selects the call semantics. Zero-depth calls should use Call.
	Kind CallKind

	// Static marks a read-only call disallowing any state-mutating
	// operation. It is the only message flag in the current revision.
	Static bool
}
