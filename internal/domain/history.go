package domain

import (
	"encoding/json"
	"fmt"
)

// Point is one observation in a time series. It marshals as the
// two-element array [timestampMillis, value] used by charting consumers.
type Point struct {
	TimestampMS int64
	Value       float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.TimestampMS), p.Value})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("point needs 2 elements, got %d", len(pair))
	}
	p.TimestampMS = int64(pair[0])
	p.Value = pair[1]
	return nil
}

// HistorySeries holds the daily price history of one coin as three
// index-aligned series in ascending time order. Market caps are an
// approximation (base volume times close); the history endpoint does not
// report capitalization.
type HistorySeries struct {
	Prices       []Point `json:"prices"`
	MarketCaps   []Point `json:"market_caps"`
	TotalVolumes []Point `json:"total_volumes"`
}

// IsEmpty reports whether the series holds no observations.
func (h HistorySeries) IsEmpty() bool {
	return len(h.Prices) == 0
}
