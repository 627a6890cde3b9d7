// Package report runs comparison suites over one maze and renders the
// outcomes side by side.
//
// A Suite lists the algorithm/heuristic combinations to execute and how many
// times each one repeats for timing purposes. Suites load from YAML
// (LoadSuite) or come preassembled (DefaultSuite, the classic six-way
// comparison). Execute produces one Record per combination: the found path,
// its label sequence, the full metrics of the first run, and, when the suite
// repeats runs, mean/median/stddev of the wall-clock milliseconds.
//
// Table renders the records as an aligned text table, one row per record,
// with the optimality verdicts highlighted. Colors respect the NO_COLOR
// conventions of github.com/fatih/color.
package report
