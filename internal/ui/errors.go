package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"simtool/internal/config"
	"simtool/internal/domain"
	"simtool/internal/storage"
)

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{config: cfg, storage: st}
}

// View displays the failures of the last run. Failures can be marked
// resolved with 'r'; the marks are persisted back to the results file.
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%d) ", len(results.Details)))
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Details ")

	itemText := func(index int) string {
		failure := results.Details[index]
		if failure.Resolved {
			return fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, failure.TestName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.TestName)
	}

	renderDetails := func(index int) {
		failure := results.Details[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[red]%s[white]: %s\n\n", failure.Kind, failure.TestName)
		if failure.File != "" {
			fmt.Fprintf(&b, "[cyan]%s:%d[white]\n\n", failure.File, failure.Line)
		}
		if len(failure.Traceback) > 0 {
			fmt.Fprintf(&b, "[yellow]Traceback:[white]\n")
			for _, frame := range failure.Traceback {
				fmt.Fprintf(&b, "  %s\n", tview.Escape(frame))
			}
			b.WriteString("\n")
		}
		if failure.Message != "" {
			fmt.Fprintf(&b, "%s\n", tview.Escape(failure.Message))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		renderDetails(index)
	})
	renderDetails(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText(" [yellow]r[white] resolve  [yellow]Tab[white] focus  [yellow]q[white] quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(help, 1, 0, false)

	var viewErr error
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		case event.Rune() == 'r':
			index := list.GetCurrentItem()
			results.Details[index].Resolved = !results.Details[index].Resolved
			list.SetItemText(index, itemText(index), "")
			if err := ev.storage.SaveOutput(results); err != nil {
				viewErr = fmt.Errorf("save resolved status: %w", err)
				app.Stop()
			}
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).Run(); err != nil {
		return err
	}
	return viewErr
}
