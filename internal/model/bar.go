package model

// Bar represents a single OHLCV candlestick row.
type Bar struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
