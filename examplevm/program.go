// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package examplevm

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vapory/vvm/vvm"
)

// The canned programs of this VM. The leading byte of the code selects the
// program; the remaining bytes are only meaningful where documented below.
const (
	markerEcho         = 0x01 // returns the call input
	markerHash         = 0x02 // returns keccak256 of the call input
	markerStore        = 0x03 // writes the first input word to storage slot 0
	markerLoad         = 0x04 // returns storage slot 0
	markerLog          = 0x05 // emits a log; the second code byte is the topic count
	markerForward      = 0x06 // relays the input to the address in its first 20 bytes
	markerDeploy       = 0x07 // create-only; deploys the code following the marker
	markerBurn         = 0x08 // consumes the complete gas budget
	markerRevert       = 0x09 // reverts with the call input as revert data
	markerSelfDestruct = 0x0A // destructs the executing account, beneficiary in input
	markerBlockHash    = 0x0B // returns the hash of the block numbered in the input
	markerBalance      = 0x0C // returns the balance of the address in the input
)

type programKind int

const (
	progStop programKind = iota
	progEcho
	progHash
	progStore
	progLoad
	progLog
	progForward
	progDeploy
	progBurn
	progRevert
	progSelfDestruct
	progBlockHash
	progBalance
)

// program is the result of analyzing a code buffer.
type program struct {
	kind    programKind
	topics  int    // only set for progLog
	payload []byte // only set for progDeploy
}

// parse analyzes the given code. The second return value is false if the
// code is not one of the recognized programs, in which case the execution
// is to be rejected.
func parse(code vvm.Code) (program, bool) {
	if len(code) == 0 {
		return program{kind: progStop}, true
	}
	switch code[0] {
	case markerEcho, markerHash, markerStore, markerLoad, markerForward,
		markerBurn, markerRevert, markerSelfDestruct, markerBlockHash,
		markerBalance:
		if len(code) != 1 {
			return program{}, false
		}
	}
	switch code[0] {
	case markerEcho:
		return program{kind: progEcho}, true
	case markerHash:
		return program{kind: progHash}, true
	case markerStore:
		return program{kind: progStore}, true
	case markerLoad:
		return program{kind: progLoad}, true
	case markerLog:
		if len(code) != 2 || code[1] > 4 {
			return program{}, false
		}
		return program{kind: progLog, topics: int(code[1])}, true
	case markerForward:
		return program{kind: progForward}, true
	case markerDeploy:
		return program{kind: progDeploy, payload: code[1:]}, true
	case markerBurn:
		return program{kind: progBurn}, true
	case markerRevert:
		return program{kind: progRevert}, true
	case markerSelfDestruct:
		return program{kind: progSelfDestruct}, true
	case markerBlockHash:
		return program{kind: progBlockHash}, true
	case markerBalance:
		return program{kind: progBalance}, true
	default:
		return program{}, false
	}
}

// Gas costs of the canned programs.
const (
	costBase          vvm.Gas = 10
	costPerInputByte  vvm.Gas = 3
	costPerDeployByte vvm.Gas = 20
)

// cost computes the up-front gas charge of the program for the given
// message. Forwarded calls additionally consume whatever the nested call
// consumes.
func (p program) cost(message vvm.Message) vvm.Gas {
	cost := costBase + vvm.Gas(len(message.Input))*costPerInputByte
	if p.kind == progDeploy {
		cost += vvm.Gas(len(p.payload)) * costPerDeployByte
	}
	return cost
}

// run executes the program. The gasLeft argument is the budget remaining
// after the up-front charge; results with a status not carrying gas report
// zero gas left.
func (p program) run(host vvm.Host, revision vvm.Revision, message vvm.Message, gasLeft vvm.Gas) vvm.Result {
	switch p.kind {
	case progStop:
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft}

	case progEcho:
		return vvm.Result{
			Status:  vvm.StatusSuccess,
			GasLeft: gasLeft,
			Output:  append(vvm.Data(nil), message.Input...),
		}

	case progHash:
		hasher := sha3.NewLegacyKeccak256()
		hasher.Write(message.Input)
		return vvm.Result{
			Status:  vvm.StatusSuccess,
			GasLeft: gasLeft,
			Output:  hasher.Sum(nil),
		}

	case progStore:
		if message.Static {
			return vvm.Result{Status: vvm.StatusStaticModeError}
		}
		var word vvm.Word
		copy(word[:], message.Input)
		host.SetStorage(message.Destination, vvm.Key{}, word)
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft}

	case progLoad:
		word := host.GetStorage(message.Destination, vvm.Key{})
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft, Output: word[:]}

	case progLog:
		if message.Static {
			return vvm.Result{Status: vvm.StatusStaticModeError}
		}
		topics := make([]vvm.Hash, p.topics)
		for i := range topics {
			topics[i] = vvm.Hash{byte(i + 1)}
		}
		host.EmitLog(message.Destination, topics, append(vvm.Data(nil), message.Input...))
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft}

	case progForward:
		if len(message.Input) < 20 {
			return vvm.Result{Status: vvm.StatusFailure}
		}
		var destination vvm.Address
		copy(destination[:], message.Input[:20])
		nested := host.Call(vvm.Message{
			Destination: destination,
			Sender:      message.Destination,
			Input:       message.Input[20:],
			Gas:         gasLeft,
			Depth:       message.Depth + 1,
			Kind:        vvm.Call,
			Static:      message.Static,
		})
		if !nested.Status.CarriesGas() {
			return vvm.Result{Status: nested.Status}
		}
		return vvm.Result{
			Status:  nested.Status,
			GasLeft: nested.GasLeft,
			Output:  nested.TakeOutput(),
		}

	case progDeploy:
		if message.Kind != vvm.Create {
			return vvm.Result{Status: vvm.StatusFailure}
		}
		return vvm.Result{
			Status:  vvm.StatusSuccess,
			GasLeft: gasLeft,
			Output:  append(vvm.Data(nil), p.payload...),
		}

	case progBurn:
		return vvm.Result{Status: vvm.StatusOutOfGas}

	case progRevert:
		// The revert instruction only exists since Byzantium.
		if revision < vvm.Byzantium {
			return vvm.Result{Status: vvm.StatusBadInstruction}
		}
		return vvm.Result{
			Status:  vvm.StatusRevert,
			GasLeft: gasLeft,
			Output:  append(vvm.Data(nil), message.Input...),
		}

	case progSelfDestruct:
		if message.Static {
			return vvm.Result{Status: vvm.StatusStaticModeError}
		}
		if len(message.Input) < 20 {
			return vvm.Result{Status: vvm.StatusFailure}
		}
		var beneficiary vvm.Address
		copy(beneficiary[:], message.Input[:20])
		host.SelfDestruct(message.Destination, beneficiary)
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft}

	case progBlockHash:
		if len(message.Input) < 8 {
			return vvm.Result{Status: vvm.StatusFailure}
		}
		number := int64(binary.BigEndian.Uint64(message.Input[:8]))
		hash := host.GetBlockHash(number)
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft, Output: hash[:]}

	case progBalance:
		if len(message.Input) < 20 {
			return vvm.Result{Status: vvm.StatusFailure}
		}
		var addr vvm.Address
		copy(addr[:], message.Input[:20])
		balance := host.GetBalance(addr)
		return vvm.Result{Status: vvm.StatusSuccess, GasLeft: gasLeft, Output: balance[:]}

	default:
		return vvm.Result{Status: vvm.StatusInternalError}
	}
}
