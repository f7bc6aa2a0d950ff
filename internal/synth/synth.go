package synth

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"SignalPipe/internal/model"
)

// Random-walk parameters matching typical crypto daily volatility.
const (
	returnMean   = 0.0001
	returnStddev = 0.02
	wickStddev   = 0.005
)

// Generate produces n synthetic OHLCV bars as a random walk starting from
// basePrice. The explicit rng makes output deterministic for a fixed seed.
func Generate(rng *rand.Rand, n int, basePrice float64) []model.Bar {
	bars := make([]model.Bar, n)
	price := basePrice
	for i := range bars {
		price *= 1 + returnMean + returnStddev*rng.NormFloat64()
		high := price * (1 + math.Abs(wickStddev*rng.NormFloat64()))
		low := price * (1 - math.Abs(wickStddev*rng.NormFloat64()))
		open := low + (high-low)*(0.2+0.6*rng.Float64())
		volume := 100 + 9900*rng.Float64()
		bars[i] = model.Bar{
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(price),
			Volume: round2(volume),
		}
	}
	return bars
}

// WriteCSV writes bars to path with an "open,high,low,close,volume" header.
func WriteCSV(path string, bars []model.Bar) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"open", "high", "low", "close", "volume"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, b := range bars {
		rec := []string{
			formatPrice(b.Open),
			formatPrice(b.High),
			formatPrice(b.Low),
			formatPrice(b.Close),
			formatPrice(b.Volume),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
