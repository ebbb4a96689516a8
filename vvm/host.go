// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

//go:generate mockgen -source host.go -destination host_mock.go -package vvm

// Host is the set of callback entry points a Host application exposes to a
// VM for the duration of one top-level execution. The VM invokes these
// synchronously and re-entrantly from within Execute, always on the same
// Host value it was handed.
//
// The interface itself is logically read-only and may be shared across
// concurrent executions; the world state it refers to is entirely
// Host-managed and outside the locking discipline of this contract.
type Host interface {
	// AccountExists reports whether an account exists at the given address.
	AccountExists(addr Address) bool

	// GetStorage returns the value of the given storage slot. Unset slots
	// read as the zero word.
	GetStorage(addr Address, key Key) Word

	// SetStorage updates the given storage slot. Failures such as storage
	// quotas are Host-internal and not observable at this boundary.
	SetStorage(addr Address, key Key, value Word)

	// GetBalance returns the balance of the account at the given address.
	GetBalance(addr Address) Value

	// GetCodeSize returns the size of the code stored at the given address
	// without fetching the code itself.
	GetCodeSize(addr Address) int

	// GetCode returns a copy of the code stored at the given address. The
	// returned slice is owned by the caller. Its length matches the size
	// reported by GetCodeSize.
	GetCode(addr Address) Code

	// SelfDestruct marks the account at addr for destruction after the
	// current execution, transferring its remaining balance to the
	// beneficiary. It does not halt execution; that is up to the VM.
	SelfDestruct(addr Address, beneficiary Address)

	// Call executes a nested call on behalf of the VM. The Host may route
	// the message to the same or a different VM implementation and returns
	// a fully formed result, whose output the caller takes ownership of.
	Call(msg Message) Result

	// GetTxContext returns the transaction and block metadata of the
	// ongoing top-level execution. The data is constant throughout an
	// execution, so a VM may fetch it lazily and memoize it.
	GetTxContext() TxContext

	// GetBlockHash returns the hash of the block with the given number.
	// Only the 256 most recent blocks are available; outside that window
	// the zero hash is returned.
	GetBlockHash(number int64) Hash

	// EmitLog records a log entry attributed to the given address. The
	// number of topics must be between 0 and 4 inclusive; violating this
	// bound is a breach of the contract by the caller, not a runtime
	// checked error.
	EmitLog(addr Address, topics []Hash, data Data)
}

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a storage slot.
type Key [32]byte

// Word represents an arbitrary big-endian 256-bit (32 bytes) word.
type Word [32]byte

// Value represents an amount of chain currency, typically wei.
type Value [32]byte

// Hash represents the 256-bit (32 bytes) hash of a code, a block, a topic
// or similar sequence of cryptographic summary information.
type Hash [32]byte

// Code represents the byte-code of a contract.
type Code []byte

// Data represents the input or output of contract invocations.
type Data []byte

// Gas represents an amount of execution gas.
type Gas int64

// Log summarizes a log entry emitted as a side effect of an execution.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// TxContext is the snapshot of transaction and block metadata fetched from
// the Host once per top-level execution.
type TxContext struct {
	GasPrice    Value
	Origin      Address
	Coinbase    Address
	BlockNumber int64
	Timestamp   int64
	GasLimit    Gas
	Difficulty  Word
}

// BlockHashWindow is the number of recent blocks for which a Host must be
// able to answer GetBlockHash queries.
const BlockHashWindow = 256
