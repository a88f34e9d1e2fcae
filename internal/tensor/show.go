package tensor

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// DefaultShowPrecision is the number of decimals Show prints for floats.
const DefaultShowPrecision = 4

// Show writes every channel plane as a rows x cols table.
func (t *Tensor[T]) Show(w io.Writer) error {
	return t.ShowPrecision(w, DefaultShowPrecision)
}

// ShowPrecision is Show with an explicit number of decimals for floats.
func (t *Tensor[T]) ShowPrecision(w io.Writer, precision int) error {
	if t.Empty() {
		return errEmpty("Show")
	}
	ext := t.extent
	for ch := 0; ch < ext.Channels(); ch++ {
		if ext.Channels() > 1 {
			if _, err := fmt.Fprintf(w, "channel %d:\n", ch); err != nil {
				return err
			}
		}

		table := tablewriter.NewWriter(w)
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.SetBorder(false)
		table.SetColumnSeparator("")
		table.SetTablePadding(" ")
		table.SetNoWhiteSpace(true)
		for row := 0; row < ext.Rows(); row++ {
			cells := make([]string, ext.Cols())
			for col := range cells {
				cells[col] = formatElement(t.store.data[ext.Offset(ch, row, col)], precision)
			}
			table.Append(cells)
		}
		table.Render()
	}
	return nil
}

func formatElement[T Numeric](v T, precision int) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'f', precision, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', precision, 64)
	default:
		return fmt.Sprint(v)
	}
}
