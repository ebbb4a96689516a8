// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	_ "github.com/vapory/vvm/examplevm"
	"github.com/vapory/vvm/vvm"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "List registered VM implementations",
}

func doList(context *cli.Context) error {
	names := maps.Keys(vvm.GetAllRegisteredVirtualMachines())
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
