package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazegrid/report"
	"github.com/katalvlaran/mazegrid/search"
)

// fixedRecords returns hand-built records with stable timings, so the table
// output is byte-for-byte reproducible.
func fixedRecords() []report.Record {
	return []report.Record{
		{
			Algorithm: "BFS",
			Heuristic: "-",
			Labels:    ".(S) -> . -> . -> . -> .(G)",
			Metrics: &search.Metrics{
				Elapsed:      1500 * time.Microsecond,
				Expanded:     8,
				Generated:    9,
				PeakFrontier: 3,
				PeakExplored: 9,
				Found:        true,
				Complete:     search.VerdictYes,
				Optimal:      search.VerdictYes,
				PathCost:     4,
				PathLen:      5,
			},
		},
		{
			Algorithm: "Greedy",
			Heuristic: "euclidean",
			Labels:    "a(S) -> b -> c(G)",
			Metrics: &search.Metrics{
				Elapsed:      250 * time.Microsecond,
				Expanded:     5,
				Generated:    7,
				PeakFrontier: 2,
				PeakExplored: 7,
				Found:        true,
				Complete:     search.VerdictYes,
				Optimal:      search.VerdictNo,
				PathCost:     6,
				PathLen:      4,
			},
		},
		{
			Algorithm: "DFS",
			Heuristic: "-",
			Labels:    "(no path)",
			Metrics: &search.Metrics{
				Elapsed:      100 * time.Microsecond,
				Expanded:     2,
				Generated:    2,
				PeakFrontier: 1,
				PeakExplored: 2,
				Found:        false,
				Complete:     search.VerdictYes,
				Optimal:      search.VerdictUnknown,
			},
		},
	}
}

func TestTable_Golden(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	out := report.Table(fixedRecords())
	goldie.New(t).Assert(t, "table", []byte(out))
}

func TestTable_MissingPathShowsDashes(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	out := report.Table(fixedRecords())
	assert.Contains(t, out, "(no path)")
	assert.Equal(t, 4, strings.Count(out, "\n"), "header plus one line per record")
}

func TestRecord_TimeMs(t *testing.T) {
	r := report.Record{Metrics: &search.Metrics{Elapsed: 1500 * time.Microsecond}}
	assert.InDelta(t, 1.5, r.TimeMs(), 1e-9)

	r.Aggregate = &report.Aggregate{Runs: 3, MeanMs: 2.25}
	assert.InDelta(t, 2.25, r.TimeMs(), 1e-9)
}
