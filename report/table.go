package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	headerStyle = color.New(color.Bold)
	okStyle     = color.New(color.FgGreen)
	badStyle    = color.New(color.FgRed)
)

var tableHeader = []string{
	"ALGORITHM", "HEURISTIC", "TIME_MS", "EXPANDED", "GENERATED",
	"PEAK_MEM", "FOUND", "COMPLETE", "OPTIMAL", "COST", "PATH",
}

// rightAligned marks the numeric columns.
var rightAligned = map[int]bool{2: true, 3: true, 4: true, 5: true, 9: true}

// Table renders records as an aligned text table, one row per record, in the
// given order. Verdict columns are colored: yes green, no red. Disable colors
// with color.NoColor for plain output.
func Table(records []Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, tableRow(r))
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeLine(&b, tableHeader, widths, true)
	for _, row := range rows {
		writeLine(&b, row, widths, false)
	}
	return b.String()
}

func tableRow(r Record) []string {
	met := r.Metrics
	cost := "-"
	if met.Found {
		cost = strconv.FormatInt(met.PathCost, 10)
	}
	return []string{
		r.Algorithm,
		r.Heuristic,
		fmt.Sprintf("%.3f", r.TimeMs()),
		strconv.Itoa(met.Expanded),
		strconv.Itoa(met.Generated),
		strconv.Itoa(met.PeakStructures()),
		yesNo(met.Found),
		met.Complete.String(),
		met.Optimal.String(),
		cost,
		r.Labels,
	}
}

// writeLine pads each cell first and colorizes after, so escape codes never
// disturb the alignment.
func writeLine(b *strings.Builder, row []string, widths []int, header bool) {
	last := len(row) - 1
	for i, cell := range row {
		if i > 0 {
			b.WriteString("  ")
		}
		padded := pad(cell, widths[i], rightAligned[i], i == last)
		switch {
		case header:
			b.WriteString(headerStyle.Sprint(padded))
		case cell == "yes":
			b.WriteString(okStyle.Sprint(padded))
		case cell == "no":
			b.WriteString(badStyle.Sprint(padded))
		default:
			b.WriteString(padded)
		}
	}
	b.WriteByte('\n')
}

func pad(cell string, width int, right, last bool) string {
	if last && !right {
		return cell // no trailing spaces
	}
	if right {
		return strings.Repeat(" ", width-len(cell)) + cell
	}
	return cell + strings.Repeat(" ", width-len(cell))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
