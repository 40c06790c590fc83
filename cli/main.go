package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/primekit/numtheory/modexp"
	"github.com/primekit/numtheory/primes"
)

var commands = []*cli.Command{
	{
		Name:  "sieve",
		Usage: "Print every prime up to a bound",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "upto",
				Aliases:  []string{"u"},
				Usage:    "Upper bound, inclusive",
				Required: true,
			},
		},
		Action: GeneratePrimes,
	},
	{
		Name:  "first",
		Usage: "Print the first N primes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "count",
				Aliases:  []string{"n"},
				Usage:    "How many primes to print",
				Required: true,
			},
		},
		Action: FirstPrimes,
	},
	{
		Name:      "isprime",
		Usage:     "Deterministic trial-division primality check",
		ArgsUsage: "N",
		Action:    CheckPrime,
	},
	{
		Name:      "fermat",
		Usage:     "Probabilistic Fermat primality check",
		ArgsUsage: "N",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rounds",
				Aliases: []string{"r"},
				Usage:   "Number of trial rounds",
				Value:   20,
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Witness RNG seed; 0 seeds from crypto/rand",
			},
		},
		Action: CheckFermat,
	},
	{
		Name:      "modexp",
		Usage:     "Compute BASE^EXP mod MOD",
		ArgsUsage: "BASE EXP MOD",
		Action:    ComputeModExp,
	},
}

func main() {
	app := &cli.App{
		Name:     "numtheory",
		Usage:    "Prime generation and primality test tools",
		Commands: commands,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func GeneratePrimes(cCtx *cli.Context) error {
	printPrimes(primes.Sieve(uint(cCtx.Uint64("upto"))))
	return nil
}

func FirstPrimes(cCtx *cli.Context) error {
	printPrimes(primes.FirstN(cCtx.Int("count")))
	return nil
}

func CheckPrime(cCtx *cli.Context) error {
	n, err := parseArg(cCtx, 0)
	if err != nil {
		return err
	}

	if primes.IsPrime(n) {
		fmt.Println("prime")
	} else {
		fmt.Println("composite")
	}
	return nil
}

func CheckFermat(cCtx *cli.Context) error {
	n, err := parseArg(cCtx, 0)
	if err != nil {
		return err
	}

	var src rand.Source
	if seed := cCtx.Uint64("seed"); seed != 0 {
		src = rand.NewPCG(seed, 0)
	}

	tester := primes.NewFermatTester(src)
	if tester.Test(n, cCtx.Int("rounds")) {
		fmt.Println("probably prime")
	} else {
		fmt.Println("composite")
	}
	return nil
}

func ComputeModExp(cCtx *cli.Context) error {
	base, err := parseArg(cCtx, 0)
	if err != nil {
		return err
	}
	exponent, err := parseArg(cCtx, 1)
	if err != nil {
		return err
	}
	modulus, err := parseArg(cCtx, 2)
	if err != nil {
		return err
	}

	fmt.Println(modexp.ModExp(base, exponent, modulus))
	return nil
}

func parseArg(cCtx *cli.Context, i int) (uint64, error) {
	arg := cCtx.Args().Get(i)
	if arg == "" {
		return 0, fmt.Errorf("missing argument %d, see --help", i+1)
	}

	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w", arg, err)
	}
	return n, nil
}

func printPrimes(ps []uint) {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = strconv.FormatUint(uint64(p), 10)
	}
	fmt.Println(strings.Join(out, " "))
}
