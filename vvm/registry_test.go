// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

import (
	"fmt"
	"testing"
)

func TestRegistry_NameCollisionsAreDetected(t *testing.T) {
	const name = "something-just-for-this-test"
	factory := func(any) (VirtualMachine, error) {
		return nil, nil
	}
	if err := RegisterVirtualMachineFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterVirtualMachineFactory(name, factory); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRegistry_NilFactoriesAreRejected(t *testing.T) {
	const name = "something"
	if err := RegisterVirtualMachineFactory(name, nil); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	const name = "CamelCaseVM"
	factory := func(any) (VirtualMachine, error) {
		return nil, nil
	}
	if err := RegisterVirtualMachineFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if GetVirtualMachineFactory("camelcasevm") == nil {
		t.Errorf("lookup with different casing failed")
	}
	if _, found := GetAllRegisteredVirtualMachines()["camelcasevm"]; !found {
		t.Errorf("registered factory missing from listing")
	}
}

func TestNewVirtualMachine_UnknownNamesAreReported(t *testing.T) {
	if _, err := NewVirtualMachine("does-not-exist"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNewVirtualMachine_ConfigurationIsForwarded(t *testing.T) {
	const name = "configured-vm-for-this-test"
	var seen any
	factory := func(config any) (VirtualMachine, error) {
		seen = config
		return nil, nil
	}
	if err := RegisterVirtualMachineFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewVirtualMachine(name, "my-config"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "my-config" {
		t.Errorf("configuration not forwarded, got %v", seen)
	}

	if _, err := NewVirtualMachine(name, "a", "b"); err == nil {
		t.Errorf("expected multiple configurations to be rejected")
	}
}

func TestNewVirtualMachine_FactoryFailuresArePropagated(t *testing.T) {
	const name = "failing-vm-for-this-test"
	factory := func(any) (VirtualMachine, error) {
		return nil, fmt.Errorf("construction failed")
	}
	if err := RegisterVirtualMachineFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewVirtualMachine(name); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
