// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

// Package examplehost provides an in-memory Host implementation of the vvm
// execution boundary. It maintains a world state of accounts, routes nested
// calls through an ordered list of VM implementations with fall-back past
// rejected executions, and enforces the Host-side contract obligations such
// as the recent-block window of block hash queries.
package examplehost

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/exp/maps"

	"github.com/vapory/vvm/vvm"
)

// maxCallDepth bounds the nesting of recursive calls served by this Host.
const maxCallDepth = 1024

// Host is an in-memory implementation of the vvm.Host interface. A Host
// serves one execution at a time; it performs no internal locking.
type Host struct {
	// State is the world state backing all account queries.
	State WorldState

	// Revision selects the rule-set nested calls are executed under.
	Revision vvm.Revision

	// TxCtx is the transaction and block metadata reported to VMs. Its
	// BlockNumber also anchors the window of answerable block hash
	// queries.
	TxCtx vvm.TxContext

	// Logs collects the log entries emitted during execution.
	Logs []vvm.Log

	// Destructed records the accounts marked for post-execution
	// destruction, keyed by address, holding the beneficiary.
	Destructed map[vvm.Address]vvm.Address

	vms []vvm.VirtualMachine
}

// New creates a Host routing nested calls through the given VM
// implementations in order. A VM rejecting a call passes it on to the next
// one in the list.
func New(vms ...vvm.VirtualMachine) *Host {
	return &Host{
		State:      WorldState{},
		Destructed: map[vvm.Address]vvm.Address{},
		vms:        vms,
	}
}

func (h *Host) AccountExists(addr vvm.Address) bool {
	_, exists := h.State[addr]
	return exists
}

func (h *Host) GetStorage(addr vvm.Address, key vvm.Key) vvm.Word {
	return h.State[addr].Storage[key]
}

func (h *Host) SetStorage(addr vvm.Address, key vvm.Key, value vvm.Word) {
	account := h.State[addr]
	if account.Storage == nil {
		account.Storage = Storage{}
	}
	account.Storage[key] = value
	h.State[addr] = account
}

func (h *Host) GetBalance(addr vvm.Address) vvm.Value {
	return h.State[addr].Balance
}

func (h *Host) GetCodeSize(addr vvm.Address) int {
	return len(h.State[addr].Code)
}

func (h *Host) GetCode(addr vvm.Address) vvm.Code {
	return append(vvm.Code(nil), h.State[addr].Code...)
}

func (h *Host) SelfDestruct(addr vvm.Address, beneficiary vvm.Address) {
	if _, marked := h.Destructed[addr]; marked {
		return
	}
	h.Destructed[addr] = beneficiary

	account := h.State[addr]
	beneficiaryAccount := h.State[beneficiary]
	beneficiaryAccount.Balance = vvm.Add(beneficiaryAccount.Balance, account.Balance)
	account.Balance = vvm.Value{}
	h.State[addr] = account
	h.State[beneficiary] = beneficiaryAccount
}

func (h *Host) GetTxContext() vvm.TxContext {
	return h.TxCtx
}

// GetBlockHash answers hash queries for the 256 most recent blocks with a
// deterministic per-number hash; everything outside that window reads as
// the zero hash.
func (h *Host) GetBlockHash(number int64) vvm.Hash {
	current := h.TxCtx.BlockNumber
	if number < 0 || number >= current || number < current-vvm.BlockHashWindow {
		return vvm.Hash{}
	}
	return vvm.Hash(crypto.Keccak256Hash([]byte(fmt.Sprintf("block %d", number))))
}

func (h *Host) EmitLog(addr vvm.Address, topics []vvm.Hash, data vvm.Data) {
	if len(topics) > 4 {
		panic(fmt.Sprintf("contract violation: %d log topics", len(topics)))
	}
	h.Logs = append(h.Logs, vvm.Log{
		Address: addr,
		Topics:  topics,
		Data:    data,
	})
}

// Call executes a nested call. The message is routed through the configured
// VM implementations in order until one does not reject it. All state
// effects of the nested execution, including emitted logs and destruction
// marks, are rolled back unless it succeeds. This covers the sender nonce
// of a failed creation; it is not burned.
func (h *Host) Call(msg vvm.Message) vvm.Result {
	if msg.Depth > maxCallDepth {
		return vvm.Result{Status: vvm.StatusFailure}
	}
	if msg.Static && (msg.Kind == vvm.Create || msg.Value != (vvm.Value{})) {
		return vvm.Result{Status: vvm.StatusStaticModeError}
	}

	snapshot := h.snapshot()

	var created *vvm.Address
	execMsg := msg
	var code vvm.Code
	if msg.Kind == vvm.Create {
		addr := h.deriveCreateAddress(msg.Sender)
		created = &addr
		execMsg.Destination = addr
		execMsg.Input = nil
		code = vvm.Code(msg.Input)
	} else {
		code = h.State[msg.Destination].Code
		codeHash := vvm.Hash(crypto.Keccak256Hash(code))
		execMsg.CodeHash = &codeHash
	}

	if err := h.transferValue(msg.Sender, execMsg.Destination, msg.Value, msg.Kind); err != nil {
		h.restore(snapshot)
		return vvm.Result{Status: vvm.StatusFailure}
	}

	result := h.execute(execMsg, code)
	if result.Status != vvm.StatusSuccess {
		h.restore(snapshot)
		return result
	}

	if msg.Kind == vvm.Create {
		account := h.State[*created]
		account.Code = vvm.Code(result.TakeOutput())
		h.State[*created] = account
		result.CreatedAddress = created
	}
	return result
}

// hostSnapshot captures everything a nested execution may mutate.
type hostSnapshot struct {
	state      WorldState
	logCount   int
	destructed map[vvm.Address]vvm.Address
}

func (h *Host) snapshot() hostSnapshot {
	return hostSnapshot{
		state:      h.State.Clone(),
		logCount:   len(h.Logs),
		destructed: maps.Clone(h.Destructed),
	}
}

func (h *Host) restore(s hostSnapshot) {
	h.State = s.state
	h.Logs = h.Logs[:s.logCount]
	h.Destructed = s.destructed
}

// execute runs the message on the first VM willing to take it.
func (h *Host) execute(msg vvm.Message, code vvm.Code) vvm.Result {
	result := vvm.Result{Status: vvm.StatusRejected}
	for _, vm := range h.vms {
		result = vm.Execute(h, h.Revision, msg, code)
		if result.Status != vvm.StatusRejected {
			break
		}
	}
	return result
}

// deriveCreateAddress computes the address of a new contract from the
// sender and its nonce, consuming the nonce.
func (h *Host) deriveCreateAddress(sender vvm.Address) vvm.Address {
	account := h.State[sender]
	addr := crypto.CreateAddress(common.Address(sender), account.Nonce)
	account.Nonce++
	h.State[sender] = account
	return vvm.Address(addr)
}

func (h *Host) transferValue(sender, recipient vvm.Address, value vvm.Value, kind vvm.CallKind) error {
	if value == (vvm.Value{}) || kind == vvm.DelegateCall {
		return nil
	}
	from := h.State[sender]
	if from.Balance.Cmp(value) < 0 {
		return fmt.Errorf("insufficient balance: %v < %v", from.Balance, value)
	}
	from.Balance = vvm.Sub(from.Balance, value)
	h.State[sender] = from

	to := h.State[recipient]
	to.Balance = vvm.Add(to.Balance, value)
	h.State[recipient] = to
	return nil
}
