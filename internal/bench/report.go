package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// Result is one target measured at one size, with all of its metrics
type Result struct {
	Name     string             `json:"name"`
	Category string             `json:"category,omitempty"` // key kind
	Target   string             `json:"target"`
	Size     int                `json:"size"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Summary is the JSON document written by a run
type Summary struct {
	Timestamp  string   `json:"timestamp"`
	GoVersion  string   `json:"go_version"`
	SystemInfo string   `json:"system_info,omitempty"`
	Seed       uint64   `json:"seed"`
	Results    []Result `json:"results"`
}

// WriteJSON encodes the summary with indentation
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteFile writes the summary to path
func (s *Summary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	if err := s.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return f.Close()
}

// ReadSummary loads a summary previously written by WriteFile
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse summary %s: %w", path, err)
	}
	return &s, nil
}

// MetricComparison compares one metric of a result across two runs
type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsSignificant bool    `json:"is_significant"`
}

// Comparison holds the metric comparisons of one result name
type Comparison struct {
	Name           string             `json:"name"`
	Metrics        []MetricComparison `json:"metrics"`
	HasRegressions bool               `json:"has_regressions"`
}

// Compare matches results by name and reports how every timing metric moved.
// A change is significant when its magnitude is at least threshold percent.
// Results present in only one summary are skipped. Regressions sort first.
func Compare(base, current *Summary, threshold float64) []Comparison {
	baseResults := make(map[string]Result, len(base.Results))
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}

	var out []Comparison
	for _, cur := range current.Results {
		b, ok := baseResults[cur.Name]
		if !ok {
			continue
		}
		c := Comparison{Name: cur.Name}
		for name, v := range cur.Metrics {
			if !isTimingMetric(name) {
				continue
			}
			bv, ok := b.Metrics[name]
			if !ok {
				continue
			}
			change := 0.0
			if bv != 0 {
				change = (v - bv) / bv * 100
			}
			mc := MetricComparison{
				Name:          name,
				BaseValue:     bv,
				CurrentValue:  v,
				PercentChange: change,
				IsRegression:  change > 0,
				IsSignificant: math.Abs(change) >= threshold,
			}
			if mc.IsRegression && mc.IsSignificant {
				c.HasRegressions = true
			}
			c.Metrics = append(c.Metrics, mc)
		}
		sort.Slice(c.Metrics, func(i, j int) bool { return c.Metrics[i].Name < c.Metrics[j].Name })
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HasRegressions != out[j].HasRegressions {
			return out[i].HasRegressions
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lower is better for every timing metric
func isTimingMetric(name string) bool {
	return strings.HasSuffix(name, "_ns_per_op")
}
