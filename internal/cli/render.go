// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/cofactor/matrix"
)

// renderMatrix writes m as a light box table with row and column indices.
func renderMatrix(w io.Writer, m *matrix.Dense) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, m.Cols()+1)
	header[0] = ""
	for j := 0; j < m.Cols(); j++ {
		header[j+1] = strconv.Itoa(j)
	}
	t.AppendHeader(header)

	cfgs := make([]table.ColumnConfig, 0, m.Cols()+1)
	for j := 1; j <= m.Cols()+1; j++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: j, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	t.SetColumnConfigs(cfgs)

	for i := 0; i < m.Rows(); i++ {
		vals, _ := m.Row(i)
		row := make(table.Row, len(vals)+1)
		row[0] = i
		for j, v := range vals {
			row[j+1] = v
		}
		t.AppendRow(row)
	}

	t.Render()
}
