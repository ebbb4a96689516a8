// Copyright (c) 2018 The Vapory Authors
//
// Use of this software is governed by the MIT License included
// in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/vapory/vvm/examplehost"
	_ "github.com/vapory/vvm/examplevm"
	"github.com/vapory/vvm/vvm"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run a code blob on a registered VM implementation",
	ArgsUsage: "<code in hex>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "vm",
			Usage: "the VM implementation running the code",
			Value: "examplevm",
		},
		&cli.Int64Flag{
			Name:  "gas",
			Usage: "the gas budget of the execution",
			Value: 1_000_000,
		},
		&cli.StringFlag{
			Name:  "input",
			Usage: "the call input in hex",
		},
		&cli.StringFlag{
			Name:  "revision",
			Usage: "the revision to execute under",
			Value: vvm.Constantinople.String(),
		},
		&cli.BoolFlag{
			Name:  "static",
			Usage: "execute in static mode",
		},
		&cli.BoolFlag{
			Name:  "create",
			Usage: "run the code as a contract creation",
		},
		&cli.StringSliceFlag{
			Name:  "option",
			Usage: "a name=value option forwarded to the VM",
		},
		&cli.IntFlag{
			Name:  "repeat",
			Usage: "number of times the execution is repeated",
			Value: 1,
		},
	},
}

var (
	senderAddress      = vvm.Address{0x01}
	destinationAddress = vvm.Address{0x02}
)

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected a single code argument, got %d", context.Args().Len())
	}
	code, err := decodeHex(context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}
	input, err := decodeHex(context.String("input"))
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	revision, err := parseRevision(context.String("revision"))
	if err != nil {
		return err
	}

	vm, err := vvm.NewVirtualMachine(context.String("vm"))
	if err != nil {
		return err
	}
	defer vm.Destroy()

	for _, option := range context.StringSlice("option") {
		name, value, found := strings.Cut(option, "=")
		if !found {
			return fmt.Errorf("invalid option %q, expected name=value", option)
		}
		if err := vvm.SetOption(vm, name, value); err != nil {
			return fmt.Errorf("failed to set option %q: %w", name, err)
		}
	}

	host := examplehost.New(vm)
	host.Revision = revision
	host.TxCtx = vvm.TxContext{
		Origin:      senderAddress,
		BlockNumber: 1000,
		GasLimit:    vvm.Gas(context.Int64("gas")),
	}
	host.State[senderAddress] = examplehost.Account{}
	host.State[destinationAddress] = examplehost.Account{Code: code}

	msg := vvm.Message{
		Sender:      senderAddress,
		Destination: destinationAddress,
		Input:       input,
		Gas:         vvm.Gas(context.Int64("gas")),
		Static:      context.Bool("static"),
	}
	if context.Bool("create") {
		msg.Kind = vvm.Create
		msg.Input = vvm.Data(code)
	}

	repeat := context.Int("repeat")
	if repeat < 1 {
		repeat = 1
	}

	var result vvm.Result
	start := time.Now()
	for i := 0; i < repeat; i++ {
		result = host.Call(msg)
	}
	elapsed := time.Since(start)

	fmt.Printf("status:   %v\n", result.Status)
	fmt.Printf("gas used: %d\n", msg.Gas-result.GasLeft)
	if output := result.TakeOutput(); len(output) > 0 {
		fmt.Printf("output:   0x%x\n", output)
	}
	if result.CreatedAddress != nil {
		fmt.Printf("created:  %v\n", result.CreatedAddress)
	}
	for _, log := range host.Logs {
		fmt.Printf("log:      %v, %d topics, data 0x%x\n", log.Address, len(log.Topics), log.Data)
	}
	if repeat > 1 {
		rate := float64(repeat) / elapsed.Seconds()
		fmt.Printf("rate:     ~%s executions per second\n", unitconv.FormatPrefix(rate, unitconv.SI, 0))
	}
	return nil
}

func decodeHex(value string) ([]byte, error) {
	value = strings.TrimPrefix(value, "0x")
	return hex.DecodeString(value)
}

func parseRevision(name string) (vvm.Revision, error) {
	for _, revision := range vvm.AllRevisions() {
		if strings.EqualFold(revision.String(), name) {
			return revision, nil
		}
	}
	return 0, fmt.Errorf("unknown revision %q", name)
}
