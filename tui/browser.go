// Package tui provides a read-only terminal browser over an assembled
// program: source, symbol table, and diagnostics panes side by side.
// There is no register/memory/breakpoint state here — this core never
// executes code, so the panel layout is source+symbols+diagnostics
// rather than the teacher's source+registers+memory+stack.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/rv32i-asm/assembler"
	"github.com/lookbusy1344/rv32i-asm/diag"
)

// Browser is the text user interface for inspecting one Assemble
// result.
type Browser struct {
	App    *tview.Application
	Pages  *tview.Pages
	Layout *tview.Flex

	SourceView      *tview.TextView
	SymbolsView     *tview.TextView
	DiagnosticsView *tview.TextView
	StatusView      *tview.TextView

	lines  []string
	result *assembler.Result
}

// NewBrowser builds a Browser over source and its already-computed
// Assemble result.
func NewBrowser(lines []string, result *assembler.Result) *Browser {
	b := &Browser{
		App:    tview.NewApplication(),
		lines:  lines,
		result: result,
	}
	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.RefreshAll()
	return b
}

func (b *Browser) initializeViews() {
	b.SourceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SourceView.SetBorder(true).SetTitle(" Source ")

	b.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolsView.SetBorder(true).SetTitle(" Symbols ")

	b.DiagnosticsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	b.DiagnosticsView.SetBorder(true).SetTitle(" Diagnostics ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(false)
}

func (b *Browser) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.SymbolsView, 0, 1, false).
		AddItem(b.DiagnosticsView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.SourceView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	b.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 1, false).
		AddItem(b.StatusView, 1, 0, false)

	b.Pages = tview.NewPages().AddPage("main", b.Layout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			b.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			b.RefreshAll()
			return nil
		}
		if event.Rune() == 'q' {
			b.App.Stop()
			return nil
		}
		return event
	})
}

// RefreshAll repopulates every pane from the current result.
func (b *Browser) RefreshAll() {
	b.updateSourceView()
	b.updateSymbolsView()
	b.updateDiagnosticsView()
	b.updateStatusView()
}

func (b *Browser) updateSourceView() {
	var sb strings.Builder
	for i, line := range b.lines {
		fmt.Fprintf(&sb, "%5d  %s\n", i+1, tview.Escape(line))
	}
	b.SourceView.SetText(sb.String())
}

func (b *Browser) updateSymbolsView() {
	var sb strings.Builder
	for _, sym := range b.result.Symbols.All() {
		if sym.Defined {
			fmt.Fprintf(&sb, "[green]%-20s[white] 0x%08X  line %d\n", sym.Name, sym.Address, sym.DefLine)
		} else {
			fmt.Fprintf(&sb, "[red]%-20s[white] (undefined)\n", sym.Name)
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("[yellow]no symbols[white]")
	}
	b.SymbolsView.SetText(sb.String())
}

func (b *Browser) updateDiagnosticsView() {
	var sb strings.Builder
	for _, d := range b.result.Diagnostics.All() {
		color := "yellow"
		if d.Kind != diag.Structural {
			color = "red"
		}
		fmt.Fprintf(&sb, "[%s]line %d:[white] %s\n", color, d.Line, d.Message)
	}
	if sb.Len() == 0 {
		sb.WriteString("[green]no diagnostics[white]")
	}
	b.DiagnosticsView.SetText(sb.String())
}

func (b *Browser) updateStatusView() {
	status := "OK"
	if !b.result.OK {
		status = fmt.Sprintf("%d diagnostic(s)", b.result.Diagnostics.Count())
	}
	b.StatusView.SetText(fmt.Sprintf(" rv32iasm  |  %d byte(s) assembled  |  %s  |  q to quit", len(b.result.Text), status))
}

// Run starts the event loop and blocks until the user quits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.SourceView).Run()
}
