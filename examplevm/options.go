// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package examplevm

import (
	"fmt"
	"math"

	"github.com/dsnet/golib/unitconv"
)

// parseCacheSize parses a cache capacity given as a plain or SI-prefixed
// number, e.g. "4096" or "64k".
func parseCacheSize(value string) (int, error) {
	size, err := unitconv.ParsePrefix(value, unitconv.SI)
	if err != nil {
		return 0, fmt.Errorf("invalid cache size: %s", value)
	}
	if size > math.MaxInt32 {
		return 0, fmt.Errorf("cache size too large: %s", value)
	}
	return int(size), nil
}
