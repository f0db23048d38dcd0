package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"mulbench/internal/bigint"
)

var (
	verifySeed   int64
	verifyRounds int
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check the multiplication algorithms against each other",
	Long: `Multiplies random operands with every algorithm and checks the
products agree, covering sizes on both sides of the dispatch
thresholds. A disagreement means a correctness bug, not a performance
problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return verifyAlgorithms(cmd.OutOrStdout(), verifySeed, verifyRounds)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "random seed for operand generation")
	verifyCmd.Flags().IntVar(&verifyRounds, "rounds", 3, "random operand pairs per size")
}

// verifySizes covers both dispatch thresholds with margin.
var verifySizes = []int{1, 5, 31, 33, 100, 255, 257, 1000}

func verifyAlgorithms(w io.Writer, seed int64, rounds int) error {
	if rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	rng := rand.New(rand.NewSource(seed))
	reference := bigint.NaiveMul{}
	checked := 0

	for _, digits := range verifySizes {
		for round := 0; round < rounds; round++ {
			a := randomOperand(rng, digits)
			b := randomOperand(rng, digits)
			want := reference.Mul(a, b).String()

			for _, algo := range bigint.Algorithms() {
				if algo.Name() == reference.Name() {
					continue
				}
				if got := algo.Mul(a, b).String(); got != want {
					return fmt.Errorf("%s disagrees with %s at %d digits (seed %d, round %d)",
						algo.Name(), reference.Name(), digits, seed, round)
				}
				checked++
			}
		}
	}

	fmt.Fprintf(w, "OK: %d products verified across %d sizes (seed %d)\n", checked, len(verifySizes), seed)
	return nil
}

// randomOperand builds a random signed integer with the given decimal
// digit count.
func randomOperand(rng *rand.Rand, digits int) *bigint.Int {
	var sb strings.Builder
	if rng.Intn(2) == 1 {
		sb.WriteByte('-')
	}
	sb.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < digits; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	v, err := bigint.Parse(sb.String())
	if err != nil {
		panic(err)
	}
	return v
}
