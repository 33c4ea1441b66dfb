// Package console はスクリーニング結果を端末向けの表として描画します。
package console

import (
	"fmt"
	"io"

	"momentum_screener/internal/feature/screener/domain/entity"
	"momentum_screener/internal/feature/screener/transport/format"

	"github.com/olekukonko/tablewriter"
)

// Render はモメンタム候補と全銘柄の2つの表を w に書き出します。
func Render(w io.Writer, res entity.ScreeningResult) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", format.PageTitle, format.Description); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", format.MomentumSection); err != nil {
		return err
	}
	if len(res.TopPicks) == 0 {
		if _, err := fmt.Fprintf(w, "ℹ %s\n\n", format.NoPicksMessage); err != nil {
			return err
		}
	} else {
		renderTable(w, res.TopPicks)
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", format.WatchlistSection); err != nil {
		return err
	}
	renderTable(w, res.All)
	return nil
}

func renderTable(w io.Writer, snaps []entity.TickerSnapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(format.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range snaps {
		table.Append([]string{
			s.Symbol,
			format.Price(s.Price),
			format.Price(s.SMA),
			format.Price(s.TypicalPrice),
			format.Volume(s.Volume),
			s.Pattern,
		})
	}
	table.Render()
}
