// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

// Package vvm defines the execution boundary between a Host application and
// pluggable Vapory Virtual Machine implementations.
//
// The package covers the full calling contract shared by both sides: the
// fixed-width value types crossing the boundary, the message and result
// structures of a single code execution, the callback interface a Host
// exposes to a running VM, and a registry through which VM implementations
// make themselves available to client code.
//
// The contract is synchronous and blocking. An Execute call does not return
// until the complete call tree, including all nested Host callbacks and
// recursive calls, has finished. The only mechanism bounding an execution is
// the gas budget carried in the message.
package vvm

//go:generate mockgen -source vvm.go -destination vm_mock.go -package vvm

// ABIVersion identifies the version of the calling contract defined by this
// package. A Host can compare it against the version reported by an
// independently built VM implementation to detect incompatibilities before
// invoking any operation.
const ABIVersion = 0

// VirtualMachine is a loaded implementation of the Vapory byte-code executor.
// Instances are obtained through NewVirtualMachine provided by the registry
// in this package.
//
// A VirtualMachine owns no caller data, but may maintain internal caches
// (for instance a cache of analyzed code) across Execute calls. The contract
// imposes no serialization on Execute; it is the implementation's
// responsibility to guard such shared state and to document whether a single
// instance may be used from multiple goroutines.
type VirtualMachine interface {
	// Execute runs the given code in the context of the provided message and
	// reports the outcome. The host provides access to the world state for
	// the duration of the call, and the revision selects which rule-set
	// semantics apply. The code buffer is borrowed from the caller for the
	// duration of the call and must not be retained.
	//
	// All outcomes, including implementation-internal failures, are reported
	// in-band through the result's status code; Execute never panics on
	// malformed code. A result with StatusRejected signals that this
	// implementation declines to run the given code or message, and that the
	// caller should fall back to an alternative implementation.
	Execute(host Host, revision Revision, message Message, code Code) Result

	// Destroy releases all resources owned by the instance. It must be
	// called exactly once; the behavior of any operation on the instance
	// after Destroy is undefined.
	Destroy()
}

// VirtualMachineConfigurator is an optional extension of the VirtualMachine
// interface for implementations exposing instance-level options. An
// implementation not implementing this interface has no configurable
// options.
type VirtualMachineConfigurator interface {
	VirtualMachine

	// SetOption configures the option with the given name. Unknown option
	// names must be reported as an error, never silently ignored. Options
	// may only be set before or between executions.
	SetOption(name, value string) error
}

// ErrOptionsNotSupported is reported by SetOption for instances that do not
// expose any configurable options.
const ErrOptionsNotSupported = ConstError("virtual machine has no configurable options")

// SetOption configures an instance-level option on the given virtual
// machine. It reports ErrOptionsNotSupported if the implementation does not
// support options at all.
func SetOption(vm VirtualMachine, name, value string) error {
	configurator, ok := vm.(VirtualMachineConfigurator)
	if !ok {
		return ErrOptionsNotSupported
	}
	return configurator.SetOption(name, value)
}
