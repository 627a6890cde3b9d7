package report

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazegrid/heuristic"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/search"
)

// RunSpec names one algorithm/heuristic combination of a suite.
// Algorithms: bfs, dfs, astar, greedy. Heuristics: manhattan, euclidean,
// zero; leave empty for bfs/dfs.
type RunSpec struct {
	Algorithm string `yaml:"algorithm"`
	Heuristic string `yaml:"heuristic,omitempty"`
}

// Suite is an ordered list of runs plus a repeat count for timing.
type Suite struct {
	Name    string    `yaml:"name"`
	Repeats int       `yaml:"repeats,omitempty"`
	Runs    []RunSpec `yaml:"runs"`
}

// DefaultSuite is the classic six-way comparison: both uninformed searches
// and both informed ones under Manhattan and Euclidean.
func DefaultSuite() Suite {
	return Suite{
		Name:    "classic comparison",
		Repeats: 5,
		Runs: []RunSpec{
			{Algorithm: "bfs"},
			{Algorithm: "dfs"},
			{Algorithm: "astar", Heuristic: "manhattan"},
			{Algorithm: "astar", Heuristic: "euclidean"},
			{Algorithm: "greedy", Heuristic: "manhattan"},
			{Algorithm: "greedy", Heuristic: "euclidean"},
		},
	}
}

// LoadSuite decodes a YAML suite and validates every run spec.
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("report: decoding suite: %w", err)
	}
	if len(s.Runs) == 0 {
		return Suite{}, ErrEmptySuite
	}
	for _, spec := range s.Runs {
		if _, err := resolve(spec); err != nil {
			return Suite{}, err
		}
	}
	return s, nil
}

// LoadSuiteFile opens path and decodes it via LoadSuite.
func LoadSuiteFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadSuite(f)
}

// Execute runs every spec of s against m, in order, and returns one Record
// per spec. Each run requests full metrics with optimality verdicts. When
// s.Repeats exceeds 1, the run repeats and the record carries aggregate
// timing statistics over all repetitions.
func Execute(m *maze.Maze, s Suite) ([]Record, error) {
	if len(s.Runs) == 0 {
		return nil, ErrEmptySuite
	}
	repeats := s.Repeats
	if repeats < 1 {
		repeats = 1
	}

	records := make([]Record, 0, len(s.Runs))
	for _, spec := range s.Runs {
		run, err := resolve(spec)
		if err != nil {
			return nil, err
		}

		first, err := run(m)
		if err != nil {
			return nil, fmt.Errorf("report: running %s: %w", spec.Algorithm, err)
		}

		rec := Record{
			ID:        uuid.New(),
			Algorithm: displayName(spec.Algorithm),
			Heuristic: heuristicName(spec),
			Path:      first.Path,
			Labels:    LabelSequence(m, first.Path),
			Metrics:   first.Metrics,
		}

		if repeats > 1 {
			samples := make(stats.Float64Data, 0, repeats)
			samples = append(samples, float64(first.Metrics.Elapsed.Nanoseconds())/1e6)
			for i := 1; i < repeats; i++ {
				res, err := run(m)
				if err != nil {
					return nil, fmt.Errorf("report: rerunning %s: %w", spec.Algorithm, err)
				}
				samples = append(samples, float64(res.Metrics.Elapsed.Nanoseconds())/1e6)
			}
			agg, err := aggregate(samples)
			if err != nil {
				return nil, fmt.Errorf("report: aggregating %s timings: %w", spec.Algorithm, err)
			}
			rec.Aggregate = agg
		}

		records = append(records, rec)
	}
	return records, nil
}

func aggregate(samples stats.Float64Data) (*Aggregate, error) {
	mean, err := stats.Mean(samples)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return nil, err
	}
	stddev, err := stats.StandardDeviation(samples)
	if err != nil {
		return nil, err
	}
	return &Aggregate{Runs: len(samples), MeanMs: mean, MedianMs: median, StdDevMs: stddev}, nil
}

// resolve maps a run spec onto a closure over the search entry points.
func resolve(spec RunSpec) (func(*maze.Maze) (*search.Result, error), error) {
	switch spec.Algorithm {
	case "bfs":
		if spec.Heuristic != "" && spec.Heuristic != "-" {
			return nil, fmt.Errorf("%w: bfs takes no heuristic, got %q", ErrUnknownHeuristic, spec.Heuristic)
		}
		return func(m *maze.Maze) (*search.Result, error) {
			return search.BFS(m, search.WithOptimality())
		}, nil
	case "dfs":
		if spec.Heuristic != "" && spec.Heuristic != "-" {
			return nil, fmt.Errorf("%w: dfs takes no heuristic, got %q", ErrUnknownHeuristic, spec.Heuristic)
		}
		return func(m *maze.Maze) (*search.Result, error) {
			return search.DFS(m, search.WithOptimality())
		}, nil
	case "astar":
		h, err := resolveHeuristic(spec.Heuristic)
		if err != nil {
			return nil, err
		}
		return func(m *maze.Maze) (*search.Result, error) {
			return search.AStar(m, h, search.WithOptimality())
		}, nil
	case "greedy":
		h, err := resolveHeuristic(spec.Heuristic)
		if err != nil {
			return nil, err
		}
		return func(m *maze.Maze) (*search.Result, error) {
			return search.Greedy(m, h, search.WithOptimality())
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, spec.Algorithm)
	}
}

func resolveHeuristic(name string) (heuristic.Func, error) {
	switch name {
	case "manhattan":
		return heuristic.Manhattan, nil
	case "euclidean":
		return heuristic.Euclidean, nil
	case "zero":
		return heuristic.Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

func displayName(algorithm string) string {
	switch algorithm {
	case "bfs":
		return "BFS"
	case "dfs":
		return "DFS"
	case "astar":
		return "A*"
	default:
		return "Greedy"
	}
}

func heuristicName(spec RunSpec) string {
	if spec.Algorithm == "bfs" || spec.Algorithm == "dfs" {
		return "-"
	}
	return spec.Heuristic
}
