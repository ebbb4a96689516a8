// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

// Package examplevm provides a reference implementation of the vvm execution
// boundary. It is not a byte-code interpreter: it recognizes a small set of
// canned programs, each selected by the leading marker byte of the code, and
// rejects everything else. Rejected executions signal the Host to fall back
// to another implementation, which makes this VM a convenient probe for
// testing Host-side composition.
package examplevm

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vapory/vvm/vvm"
)

func init() {
	err := vvm.RegisterVirtualMachineFactory("examplevm", func(config any) (vvm.VirtualMachine, error) {
		if config == nil {
			return New(Config{})
		}
		c, ok := config.(Config)
		if !ok {
			return nil, fmt.Errorf("invalid configuration of type %T", config)
		}
		return New(c)
	})
	if err != nil {
		panic(err)
	}
}

// Config contains the set of construction-time options of this VM.
type Config struct {
	// CacheCapacity is the maximum number of analyzed programs retained
	// across executions. If zero, a default capacity is used. If negative,
	// no cache is maintained.
	CacheCapacity int
}

const defaultCacheCapacity = 1 << 14

// VM is an instance of the example implementation. A single instance may be
// used concurrently from multiple goroutines; the program cache is the only
// shared state and is internally synchronized.
type VM struct {
	cache *lru.Cache[vvm.Hash, program]
}

// New creates a VM instance using the given configuration. Construction
// fails if the cache cannot be allocated.
func New(config Config) (*VM, error) {
	vm := &VM{}
	if config.CacheCapacity >= 0 {
		capacity := config.CacheCapacity
		if capacity == 0 {
			capacity = defaultCacheCapacity
		}
		cache, err := lru.New[vvm.Hash, program](capacity)
		if err != nil {
			return nil, err
		}
		vm.cache = cache
	}
	return vm, nil
}

func (vm *VM) Execute(host vvm.Host, revision vvm.Revision, message vvm.Message, code vvm.Code) vvm.Result {
	if revision < vvm.Frontier || revision > vvm.Constantinople {
		return vvm.Result{Status: vvm.StatusRejected}
	}

	prog, ok := vm.analyze(message.CodeHash, code)
	if !ok {
		return vvm.Result{Status: vvm.StatusRejected}
	}

	gasLeft := message.Gas - prog.cost(message)
	if gasLeft < 0 {
		return vvm.Result{Status: vvm.StatusOutOfGas}
	}
	return prog.run(host, revision, message, gasLeft)
}

// Destroy releases the resources owned by the instance. The instance must
// not be used afterwards.
func (vm *VM) Destroy() {
	vm.cache = nil
}

// SetOption configures an instance-level option. Supported options:
//
//   - "cache-size": maximum number of cached programs, given as a plain or
//     SI-prefixed number (e.g. "64k"); a non-positive size disables caching
//   - "cache": "on" or "off"
//
// Unknown option names are rejected.
func (vm *VM) SetOption(name, value string) error {
	switch name {
	case "cache-size":
		capacity, err := parseCacheSize(value)
		if err != nil {
			return err
		}
		if capacity <= 0 {
			vm.cache = nil
			return nil
		}
		cache, err := lru.New[vvm.Hash, program](capacity)
		if err != nil {
			return err
		}
		vm.cache = cache
		return nil
	case "cache":
		switch value {
		case "on":
			if vm.cache == nil {
				cache, err := lru.New[vvm.Hash, program](defaultCacheCapacity)
				if err != nil {
					return err
				}
				vm.cache = cache
			}
			return nil
		case "off":
			vm.cache = nil
			return nil
		default:
			return fmt.Errorf("invalid value for option cache: %s", value)
		}
	default:
		return fmt.Errorf("%w: %s", errUnknownOption, name)
	}
}

const errUnknownOption = vvm.ConstError("unknown option")

// analyze resolves the program encoded by the given code, consulting the
// cache if a code hash hint is available. The second return value is false
// if the code is not one of the recognized programs.
func (vm *VM) analyze(codeHash *vvm.Hash, code vvm.Code) (program, bool) {
	if vm.cache == nil || codeHash == nil {
		return parse(code)
	}

	if prog, exists := vm.cache.Get(*codeHash); exists {
		return prog, true
	}

	prog, ok := parse(code)
	if ok {
		vm.cache.Add(*codeHash, prog)
	}
	return prog, ok
}
