package memory

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Render formats a snapshot as a table.
func Render(s Snapshot) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)

	tbl.AppendHeader(table.Row{"Memory", "Bytes"})
	tbl.AppendRow(table.Row{"Heap alloc", humanize.IBytes(s.HeapAlloc)})
	tbl.AppendRow(table.Row{"Heap in use", humanize.IBytes(s.HeapInuse)})
	tbl.AppendRow(table.Row{"Heap idle", humanize.IBytes(s.HeapIdle)})
	tbl.AppendRow(table.Row{"Heap released", humanize.IBytes(s.HeapReleased)})
	tbl.AppendRow(table.Row{"Sys", humanize.IBytes(s.Sys)})

	if s.RSS != 0 || s.PeakRSS != 0 {
		tbl.AppendSeparator()
		tbl.AppendRow(table.Row{"RSS", humanize.IBytes(s.RSS)})
		tbl.AppendRow(table.Row{"Peak RSS", humanize.IBytes(s.PeakRSS)})
	}

	return tbl.Render()
}
