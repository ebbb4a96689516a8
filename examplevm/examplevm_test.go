// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package examplevm

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/sha3"
	"pgregory.net/rand"

	"github.com/vapory/vvm/vvm"
)

func newTestVM(t *testing.T) *VM {
	t.Helper()
	vm, err := New(Config{})
	if err != nil {
		t.Fatalf("failed to create VM: %v", err)
	}
	t.Cleanup(vm.Destroy)
	return vm
}

func TestVM_IsRegistered(t *testing.T) {
	vm, err := vvm.NewVirtualMachine("examplevm")
	if err != nil {
		t.Fatalf("failed to obtain registered instance: %v", err)
	}
	defer vm.Destroy()

	if _, ok := vm.(vvm.VirtualMachineConfigurator); !ok {
		t.Errorf("instance should expose configurable options")
	}
}

func TestVM_EmptyCodeSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 100}, nil)
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if result.GasLeft != 100-costBase {
		t.Errorf("unexpected gas left: %d", result.GasLeft)
	}
}

func TestVM_UnknownCodeIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	codes := []vvm.Code{
		{0xFF},
		{0x60, 0x00},       // plain byte-code is not supported
		{markerEcho, 0x01}, // trailing bytes after a one-byte program
		{markerLog, 0x05},  // too many topics
		{markerLog},        // missing topic count
	}

	for _, code := range codes {
		result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000}, code)
		if result.Status != vvm.StatusRejected {
			t.Errorf("code 0x%x should be rejected, got %v", code, result.Status)
		}
		if result.GasLeft != 0 {
			t.Errorf("rejected result must not carry gas, got %d", result.GasLeft)
		}
	}
}

func TestVM_UnknownRevisionIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	result := vm.Execute(host, vvm.Constantinople+1, vvm.Message{Gas: 100}, nil)
	if result.Status != vvm.StatusRejected {
		t.Errorf("unexpected status: %v", result.Status)
	}
}

func TestVM_EchoReturnsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	input := vvm.Data("hello")
	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Input: input}, vvm.Code{markerEcho})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if !bytes.Equal(result.Output, input) {
		t.Errorf("unexpected output: 0x%x", result.Output)
	}
	if want := 1000 - costBase - vvm.Gas(len(input))*costPerInputByte; result.GasLeft != want {
		t.Errorf("unexpected gas left, wanted %d, got %d", want, result.GasLeft)
	}
}

func TestVM_HashReturnsKeccakOfInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	input := vvm.Data("input to be hashed")
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(input)
	want := hasher.Sum(nil)

	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Input: input}, vvm.Code{markerHash})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if !bytes.Equal(result.Output, want) {
		t.Errorf("unexpected hash: 0x%x", result.Output)
	}
}

func TestVM_StoreWritesSlotZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	destination := vvm.Address{0x42}
	host.EXPECT().SetStorage(destination, vvm.Key{}, vvm.Word{0x12})

	message := vvm.Message{Destination: destination, Gas: 1000, Input: vvm.Data{0x12}}
	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerStore})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
}

func TestVM_StaticModeBlocksMutations(t *testing.T) {
	tests := map[string]struct {
		code  vvm.Code
		input vvm.Data
	}{
		"store":        {code: vvm.Code{markerStore}},
		"log":          {code: vvm.Code{markerLog, 2}},
		"selfdestruct": {code: vvm.Code{markerSelfDestruct}, input: make(vvm.Data, 20)},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			host := vvm.NewMockHost(ctrl)
			vm := newTestVM(t)

			message := vvm.Message{Gas: 1000, Static: true, Input: test.input}
			result := vm.Execute(host, vvm.Constantinople, message, test.code)
			if result.Status != vvm.StatusStaticModeError {
				t.Fatalf("unexpected status: %v", result.Status)
			}
			if result.GasLeft != 0 {
				t.Errorf("static mode violation must not carry gas, got %d", result.GasLeft)
			}
		})
	}
}

func TestVM_LoadReadsSlotZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	destination := vvm.Address{0x42}
	host.EXPECT().GetStorage(destination, vvm.Key{}).Return(vvm.Word{0x33})

	message := vvm.Message{Destination: destination, Gas: 1000}
	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerLoad})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if want := (vvm.Word{0x33}); !bytes.Equal(result.Output, want[:]) {
		t.Errorf("unexpected output: 0x%x", result.Output)
	}
}

func TestVM_LogTopicCountsAreHonored(t *testing.T) {
	for count := 0; count <= 4; count++ {
		ctrl := gomock.NewController(t)
		host := vvm.NewMockHost(ctrl)
		vm := newTestVM(t)

		destination := vvm.Address{0x42}
		host.EXPECT().EmitLog(destination, gomock.Len(count), gomock.Any())

		message := vvm.Message{Destination: destination, Gas: 1000}
		result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerLog, byte(count)})
		if result.Status != vvm.StatusSuccess {
			t.Fatalf("unexpected status for %d topics: %v", count, result.Status)
		}
	}
}

func TestVM_ForwardRelaysToNestedCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	self := vvm.Address{0x01}
	target := vvm.Address{0x02}
	input := append(vvm.Data(target[:]), 0xAA, 0xBB)

	host.EXPECT().Call(gomock.Any()).DoAndReturn(func(msg vvm.Message) vvm.Result {
		if msg.Destination != target {
			t.Errorf("unexpected destination: %v", msg.Destination)
		}
		if msg.Sender != self {
			t.Errorf("unexpected sender: %v", msg.Sender)
		}
		if msg.Depth != 1 {
			t.Errorf("unexpected depth: %d", msg.Depth)
		}
		if !bytes.Equal(msg.Input, []byte{0xAA, 0xBB}) {
			t.Errorf("unexpected input: 0x%x", msg.Input)
		}
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: msg.Gas / 2, Output: vvm.Data("nested")}
	})

	message := vvm.Message{Destination: self, Gas: 1000, Input: input}
	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerForward})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if string(result.Output) != "nested" {
		t.Errorf("nested output not propagated, got %q", result.Output)
	}
}

func TestVM_ForwardPropagatesFailuresWithoutGas(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	host.EXPECT().Call(gomock.Any()).Return(vvm.Result{Status: vvm.StatusFailure})

	message := vvm.Message{Gas: 1000, Input: make(vvm.Data, 20)}
	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerForward})
	if result.Status != vvm.StatusFailure {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if result.GasLeft != 0 {
		t.Errorf("failed result must not carry gas, got %d", result.GasLeft)
	}
}

func TestVM_DeployIsOnlyValidForCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	code := vvm.Code{markerDeploy, 0x01, 0x02}

	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Kind: vvm.Create}, code)
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if !bytes.Equal(result.Output, []byte{0x01, 0x02}) {
		t.Errorf("unexpected deployment output: 0x%x", result.Output)
	}

	result = vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Kind: vvm.Call}, code)
	if result.Status != vvm.StatusFailure {
		t.Errorf("deploy program outside create should fail, got %v", result.Status)
	}
}

func TestVM_GasExhaustionIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: costBase - 1}, nil)
	if result.Status != vvm.StatusOutOfGas {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if result.GasLeft != 0 {
		t.Errorf("out-of-gas result must not carry gas, got %d", result.GasLeft)
	}

	result = vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000}, vvm.Code{markerBurn})
	if result.Status != vvm.StatusOutOfGas {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if result.GasLeft != 0 {
		t.Errorf("out-of-gas result must not carry gas, got %d", result.GasLeft)
	}
}

func TestVM_RevertIsGatedByRevision(t *testing.T) {
	for _, revision := range vvm.AllRevisions() {
		ctrl := gomock.NewController(t)
		host := vvm.NewMockHost(ctrl)
		vm := newTestVM(t)

		message := vvm.Message{Gas: 1000, Input: vvm.Data("reason")}
		result := vm.Execute(host, revision, message, vvm.Code{markerRevert})

		if revision < vvm.Byzantium {
			if result.Status != vvm.StatusBadInstruction {
				t.Errorf("revision %v should not know revert, got %v", revision, result.Status)
			}
			if result.GasLeft != 0 {
				t.Errorf("bad instruction must not carry gas, got %d", result.GasLeft)
			}
		} else {
			if result.Status != vvm.StatusRevert {
				t.Errorf("revision %v should revert, got %v", revision, result.Status)
			}
			if string(result.Output) != "reason" {
				t.Errorf("revert data not preserved, got %q", result.Output)
			}
			if result.GasLeft <= 0 {
				t.Errorf("revert should carry remaining gas, got %d", result.GasLeft)
			}
		}
	}
}

func TestVM_SelfDestructInformsHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	self := vvm.Address{0x01}
	beneficiary := vvm.Address{0x02}
	host.EXPECT().SelfDestruct(self, beneficiary)

	message := vvm.Message{Destination: self, Gas: 1000, Input: vvm.Data(beneficiary[:])}
	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerSelfDestruct})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
}

func TestVM_BlockHashQueriesHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	host.EXPECT().GetBlockHash(int64(12)).Return(vvm.Hash{0x12})

	input := make(vvm.Data, 8)
	input[7] = 12
	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Input: input}, vvm.Code{markerBlockHash})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if want := (vvm.Hash{0x12}); !bytes.Equal(result.Output, want[:]) {
		t.Errorf("unexpected output: 0x%x", result.Output)
	}
}

func TestVM_BalanceQueriesHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	addr := vvm.Address{0x42}
	host.EXPECT().GetBalance(addr).Return(vvm.NewValue(100))

	result := vm.Execute(host, vvm.Constantinople, vvm.Message{Gas: 1000, Input: vvm.Data(addr[:])}, vvm.Code{markerBalance})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}
	if want := vvm.NewValue(100); !bytes.Equal(result.Output, want[:]) {
		t.Errorf("unexpected output: 0x%x", result.Output)
	}
}

func TestVM_ProgramsAreCachedByCodeHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	vm := newTestVM(t)

	codeHash := vvm.Hash{0x01}
	message := vvm.Message{Gas: 1000, CodeHash: &codeHash}

	result := vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerEcho})
	if result.Status != vvm.StatusSuccess {
		t.Fatalf("unexpected status: %v", result.Status)
	}

	// The hint promises the same code; the cached analysis wins even if a
	// different buffer is handed in.
	result = vm.Execute(host, vvm.Constantinople, message, vvm.Code{0xFF})
	if result.Status != vvm.StatusSuccess {
		t.Errorf("cached program not used, got %v", result.Status)
	}

	// Rejected analyses are not cached.
	otherHash := vvm.Hash{0x02}
	message.CodeHash = &otherHash
	result = vm.Execute(host, vvm.Constantinople, message, vvm.Code{0xFF})
	if result.Status != vvm.StatusRejected {
		t.Errorf("unexpected status: %v", result.Status)
	}
	result = vm.Execute(host, vvm.Constantinople, message, vvm.Code{markerEcho})
	if result.Status != vvm.StatusSuccess {
		t.Errorf("unexpected status: %v", result.Status)
	}
}

func TestVM_SetOption(t *testing.T) {
	vm := newTestVM(t)

	if err := vm.SetOption("cache-size", "64k"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := vm.SetOption("cache-size", "0"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if vm.cache != nil {
		t.Errorf("zero cache size should disable the cache")
	}
	if err := vm.SetOption("cache", "on"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if vm.cache == nil {
		t.Errorf("cache should be enabled again")
	}
	if err := vm.SetOption("cache", "sideways"); err == nil {
		t.Errorf("invalid cache value should be rejected")
	}
	if err := vm.SetOption("cache-size", "not-a-number"); err == nil {
		t.Errorf("invalid cache size should be rejected")
	}
}

func TestVM_UnknownOptionsAreRejected(t *testing.T) {
	vm := newTestVM(t)

	if err := vm.SetOption("no-such-option", "1"); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(vm.SetOption("no-such-option", "1"), errUnknownOption) {
		t.Errorf("unexpected error kind")
	}
}

func TestVM_GasLeftInvariantHoldsForRandomMessages(t *testing.T) {
	rnd := rand.New(0)
	ctrl := gomock.NewController(t)
	host := vvm.NewMockHost(ctrl)
	host.EXPECT().SetStorage(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	host.EXPECT().GetStorage(gomock.Any(), gomock.Any()).AnyTimes()
	host.EXPECT().GetBalance(gomock.Any()).AnyTimes()
	host.EXPECT().GetBlockHash(gomock.Any()).AnyTimes()
	host.EXPECT().EmitLog(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	host.EXPECT().SelfDestruct(gomock.Any(), gomock.Any()).AnyTimes()
	host.EXPECT().Call(gomock.Any()).Return(vvm.Result{Status: vvm.StatusSuccess}).AnyTimes()

	vm := newTestVM(t)

	for i := 0; i < 1000; i++ {
		code := make(vvm.Code, rnd.Intn(3))
		rnd.Read(code)
		input := make(vvm.Data, rnd.Intn(64))
		rnd.Read(input)
		message := vvm.Message{
			Gas:    vvm.Gas(rnd.Int63n(500)),
			Input:  input,
			Static: rnd.Intn(2) == 0,
			Kind:   vvm.CallKind(rnd.Intn(4)),
		}

		result := vm.Execute(host, vvm.Revision(rnd.Intn(6)), message, code)
		if !result.Status.CarriesGas() && result.GasLeft != 0 {
			t.Fatalf("status %v must not carry gas, got %d (code 0x%x)", result.Status, result.GasLeft, code)
		}
		if result.GasLeft > message.Gas {
			t.Fatalf("execution minted gas: %d > %d", result.GasLeft, message.Gas)
		}
	}
}
