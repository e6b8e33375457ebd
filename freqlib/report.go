package freqlib

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WritePlain prints one "  term : freq" row per term
func WritePlain(w io.Writer, terms []Term) error {
	for _, t := range terms {
		if _, err := fmt.Fprintf(w, "  %-15s : %4d\n", t.Word, t.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders terms as a rank/term/frequency table
func WriteTable(w io.Writer, terms []Term) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Term", "Frequency"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.SetAutoWrapText(false)
	for i, t := range terms {
		table.Append([]string{strconv.Itoa(i + 1), t.Word, strconv.Itoa(t.Count)})
	}
	table.Render()
}
