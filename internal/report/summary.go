// Package report renders the human-readable breakdown printed by --summary.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/fvcalc/internal/interest"
)

// Summary renders calc as a boxed table for w. Colors are only emitted when
// w is a terminal that supports them.
func Summary(w io.Writer, calc interest.Calculation) string {
	s := newStyles(lipgloss.NewRenderer(w))

	row := func(label, value string, valueStyle lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), valueStyle.Render(value))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Simple interest"),
		row("Present value", interest.CurrencySymbol+calc.PresentValue.String(), s.value),
		row("Interest rate", fmt.Sprintf("%s (%s)", calc.Rate.Percent(), calc.Rate.String()), s.value),
		row("Term", years(calc.Term), s.value),
		row("Accrued interest", interest.CurrencySymbol+calc.AccruedInterest().StringFixed(2), s.value),
		row("Future value", calc.FutureValue.Currency(), s.total),
	)

	return s.box.Render(body)
}

// Write prints the summary of calc to w followed by a newline.
func Write(w io.Writer, calc interest.Calculation) error {
	_, err := fmt.Fprintln(w, Summary(w, calc))
	return err
}

func years(n interest.Term) string {
	if n.Years() == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n.Years())
}
