// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package examplehost

import (
	"maps"

	"github.com/vapory/vvm/vvm"
)

// WorldState models the account state of a chain in memory. It is intended
// for embedding tests and tools driving VM implementations; a production
// Host would back this with its state database.
type WorldState map[vvm.Address]Account

// Account represents an account in the world state. The default account is
// an empty account.
type Account struct {
	Balance vvm.Value
	Nonce   uint64
	Code    vvm.Code
	Storage Storage
}

// Storage represents the storage of an account. Unset slots read as the
// zero word.
type Storage map[vvm.Key]vvm.Word

func (s WorldState) Clone() WorldState {
	if s == nil {
		return nil
	}
	res := make(WorldState, len(s))
	for addr, account := range s {
		res[addr] = account.Clone()
	}
	return res
}

func (a Account) Clone() Account {
	return Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Code:    append(vvm.Code(nil), a.Code...),
		Storage: maps.Clone(a.Storage),
	}
}
