package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/flopstats/calculation"
)

// Table renders a boxed pterm table, one row per bet size. The row with
// the highest EV is bold and every other row shows its EV loss against it.
type Table struct{}

var tableHeader = []string{"Size", "EQ", "EV", "Bet", "Check", "EV Difference"}

func (Table) Render(w io.Writer, res calculation.Result) error {
	symbols := make([]string, 0, len(res.Boards))
	for _, b := range sortedBoards(res.Boards) {
		symbols = append(symbols, b.Symbols())
	}
	fmt.Fprintf(w, "Considered boards: %s\n", strings.Join(symbols, ", "))
	fmt.Fprintf(w, "%s %d boards, fingerprint %s\n\n",
		pterm.LightCyan("|BOARDS|"), len(res.Boards), res.Fingerprint)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData(res)).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func tableData(res calculation.Result) pterm.TableData {
	data := pterm.TableData{tableHeader}
	best := res.MaxEV()
	for i, row := range res.Rows {
		cells := []string{
			row.Size.String(),
			fmt.Sprintf("%.2f", row.Equity),
			fmt.Sprintf("%.2f", row.EV),
			fmt.Sprintf("%.2f", row.BetFreq),
			fmt.Sprintf("%.2f", row.CheckFreq),
		}
		if i == best {
			cells = append(cells, "0")
			for j := range cells {
				cells[j] = pterm.Bold.Sprint(cells[j])
			}
		} else {
			cells = append(cells, pterm.Red(evDifference(row.EV-res.Rows[best].EV)))
		}
		data = append(data, cells)
	}
	return data
}

// evDifference formats an EV gap in big blinds and in BB/100.
func evDifference(diff float64) string {
	return fmt.Sprintf("%.2f = %.1f BB/100", diff, diff*10)
}
