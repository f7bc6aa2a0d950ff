package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"SignalPipe/internal/synth"
)

func main() {
	out := flag.String("out", "data.csv", "path to output CSV file")
	rows := flag.Int("rows", 10000, "number of rows to generate")
	seed := flag.Int64("seed", 42, "random seed")
	basePrice := flag.Float64("base-price", 30000.0, "starting price of the random walk")
	flag.Parse()

	if *rows < 1 {
		fmt.Fprintln(os.Stderr, "-rows must be >= 1")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	bars := synth.Generate(rng, *rows, *basePrice)
	if err := synth.WriteCSV(*out, bars); err != nil {
		fmt.Fprintf(os.Stderr, "generate data: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s with %d rows\n", *out, len(bars))
}
