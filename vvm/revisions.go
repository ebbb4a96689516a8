// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package vvm

import (
	"encoding/json"
	"fmt"
)

// Revision names a rule-set version gating which opcodes and semantics are
// active, based on the Vapory upgrade milestones. Revisions are totally
// ordered; a VM receiving a revision it does not support should report
// StatusRejected.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	numRevisions int = iota
)

func (r Revision) String() string {
	switch r {
	case Frontier:
		return "Frontier"
	case Homestead:
		return "Homestead"
	case TangerineWhistle:
		return "TangerineWhistle"
	case SpuriousDragon:
		return "SpuriousDragon"
	case Byzantium:
		return "Byzantium"
	case Constantinople:
		return "Constantinople"
	default:
		return fmt.Sprintf("Revision(%d)", r)
	}
}

func (r Revision) MarshalJSON() ([]byte, error) {
	if r < 0 || int(r) >= numRevisions {
		return nil, fmt.Errorf("invalid revision: %d", r)
	}
	return json.Marshal(r.String())
}

func (r *Revision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var revision Revision
	switch s {
	case "Frontier":
		revision = Frontier
	case "Homestead":
		revision = Homestead
	case "TangerineWhistle":
		revision = TangerineWhistle
	case "SpuriousDragon":
		revision = SpuriousDragon
	case "Byzantium":
		revision = Byzantium
	case "Constantinople":
		revision = Constantinople
	default:
		return fmt.Errorf("unknown revision: %s", s)
	}
	*r = revision
	return nil
}

// AllRevisions lists the supported revisions in their total order.
func AllRevisions() []Revision {
	res := make([]Revision, numRevisions)
	for i := range res {
		res[i] = Revision(i)
	}
	return res
}

// ErrUnsupportedRevision is reported by components that cannot serve a
// request under the requested revision.
type ErrUnsupportedRevision struct {
	Revision Revision
}

func (e *ErrUnsupportedRevision) Error() string {
	return fmt.Sprintf("unsupported revision %d", e.Revision)
}
