package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qreg"
	"github.com/theapemachine/qreg/algorithms"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		errnie.Warn("qreg - %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	myApp := cli.NewApp()
	myApp.Name = "qreg"
	myApp.Usage = "dense quantum register simulator examples"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "epsilon",
			Value: qreg.DefaultEpsilon,
			Usage: "tolerance for closeness and probability checks",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "dump the constructed operators and states",
		},
	}
	myApp.Commands = []cli.Command{
		{
			Name:  "bernstein",
			Usage: "recover a hidden bit string with one oracle query",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "bits",
					Value: 7,
					Usage: "register size, including the output qubit",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "seed for secret generation, 0 uses the clock",
				},
				cli.IntFlag{
					Name:  "trials",
					Value: 1,
					Usage: "number of independent secrets to recover",
				},
				cli.BoolFlag{
					Name:  "oracle",
					Usage: "build U_f with OracleUf instead of explicit Cnots",
				},
			},
			Action: runBernstein,
		},
		{
			Name:   "superdense",
			Usage:  "send two classical bits through one entangled qubit",
			Action: runSuperdense,
		},
	}
	return myApp
}

func runBernstein(c *cli.Context) error {
	nbits := c.Int("bits")
	if nbits < 2 {
		return errors.Errorf("bits must be at least 2, got %d", nbits)
	}

	seed := uint64(c.Int64("seed"))
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eps := qreg.WithEpsilon(c.GlobalFloat64("epsilon"))
	build := algorithms.BernsteinOracle
	if c.Bool("oracle") {
		build = algorithms.DotProductOracle
	}

	// Trials share nothing, so each one gets its own random source.
	var g errgroup.Group
	for trial := 0; trial < c.Int("trials"); trial++ {
		rng := rand.New(rand.NewPCG(seed, uint64(trial)))
		g.Go(func() error {
			secret := algorithms.MakeSecret(nbits-1, rng)
			oracle, err := build(nbits, secret, eps)
			if err != nil {
				return err
			}
			if c.GlobalBool("verbose") {
				spew.Dump(secret, oracle.Dim())
			}

			found, err := algorithms.RunBernstein(nbits, secret, oracle)
			if err != nil {
				return err
			}
			fmt.Printf("trial %d: expected %v, found %v\n", trial, secret, found)
			return nil
		})
	}
	return g.Wait()
}

func runSuperdense(c *cli.Context) error {
	eps := c.GlobalFloat64("epsilon")

	for bit0 := 0; bit0 < 2; bit0++ {
		for bit1 := 0; bit1 < 2; bit1++ {
			if err := algorithms.RunSuperdense(bit0, bit1, eps); err != nil {
				return err
			}
			fmt.Printf("expected/matched: |%d%d⟩\n", bit0, bit1)
		}
	}

	if c.GlobalBool("verbose") {
		pair, err := qreg.BellState(0, 0)
		if err != nil {
			return err
		}
		spew.Dump(pair.Amplitudes())
	}
	return nil
}
