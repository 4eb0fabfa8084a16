package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// writeAnalysisTable renders the analysis as rounded tables, one per
// section, with a plain timing block up top.
func writeAnalysisTable(w io.Writer, a Analysis, opts Options) error {
	scheme := newColorScheme(opts.Color)

	if _, err := fmt.Fprintf(w, "\nSession %s (%d files)\n", a.SessionID, a.FileCount); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", scheme.header.Sprint("Timing Statistics:"))
	fmt.Fprintf(w, "  Total duration: %.2f seconds\n", a.Timing.TotalDurationSecs)
	fmt.Fprintf(w, "  Entry count: %d\n", a.Timing.EntryCount)
	fmt.Fprintf(w, "  Avg time between entries: %.2fs\n", a.Timing.AvgTimeBetweenEntries)

	fmt.Fprintf(w, "\n%s\n", scheme.header.Sprint("Agent Statistics:"))
	tw := newTableWriter(w, opts)
	tw.AppendHeader(table.Row{"Agent", "Invocations", "Total (ms)", "Avg (ms)"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	for _, stats := range a.Agents {
		tw.AppendRow(table.Row{stats.Name, stats.InvocationCount, stats.TotalDurationMS,
			fmt.Sprintf("%.2f", stats.AvgDurationMS)})
	}
	if len(a.Agents) == 0 {
		tw.AppendRow(table.Row{"(no agents)", "-", "-", "-"})
	}
	tw.Render()

	fmt.Fprintf(w, "\n%s\n", scheme.header.Sprint("Pattern Detection:"))
	tw = newTableWriter(w, opts)
	tw.AppendHeader(table.Row{"Type", "Details"})
	for _, p := range a.Patterns.Patterns {
		tw.AppendRow(table.Row{string(p.Type), DescribePattern(p)})
	}
	if len(a.Patterns.Patterns) == 0 {
		tw.AppendRow(table.Row{"-", "(no patterns)"})
	}
	tw.Render()

	fmt.Fprintf(w, "\n%s\n", scheme.header.Sprint("Entry Kinds:"))
	tw = newTableWriter(w, opts)
	tw.AppendHeader(table.Row{"Kind", "Count"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	for _, kc := range a.KindCounts {
		tw.AppendRow(table.Row{string(kc.Kind), kc.Count})
	}
	tw.Render()

	return nil
}

// newTableWriter creates a rounded table capped to the available width.
func newTableWriter(w io.Writer, opts Options) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	if opts.Width > 0 {
		tw.Style().Size.WidthMax = opts.Width
	}
	return tw
}
