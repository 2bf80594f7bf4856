package main

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mkb/i80/i8080"
	"github.com/mkb/i80/machine"
)

// debugger is a terminal debugger for a running machine. Commands are
// entered in the input field at the bottom:
//
//	b <sym|addr>   stop when PC reaches the address ("b" alone clears)
//	d <sym|addr>   log state each time PC passes the address
//	w <sym|addr>   watch the memory byte at the address
//	w2 <sym|addr>  watch the memory word at the address
//	pause, step, cont, exit
type debugger struct {
	run *machine.Runner

	log   *tview.TextView
	watch *tview.TextView
	state *tview.TextView
	input *tview.InputField
	cols  *tview.Flex
	rows  *tview.Flex
	app   *tview.Application

	dbg, brk *symbol

	mu      sync.Mutex
	syms    symbols
	watches []watch
}

type watch struct {
	symbol
	word bool
}

func (d *debugger) symbols() symbols {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.syms
}

func (d *debugger) setSymbols(s symbols) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.syms = s
}

func newDebugger() *debugger {
	d := &debugger{
		log: tview.NewTextView().
			SetMaxLines(1000),
		watch: tview.NewTextView().
			SetWrap(false).
			SetTextAlign(tview.AlignRight),
		state: tview.NewTextView().
			SetWrap(false),
		input: tview.NewInputField(),
		cols:  tview.NewFlex(),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}
	d.log.SetChangedFunc(func() { d.app.Draw() })
	d.watch.SetBackgroundColor(tcell.ColorDarkBlue)
	d.state.SetBackgroundColor(tcell.ColorDarkGrey)
	d.cols.
		AddItem(d.watch, 0, 1, false).
		AddItem(d.log, 0, 2, false)
	d.rows.
		AddItem(d.cols, 0, 1, false).
		AddItem(d.state, 3, 0, false).
		AddItem(d.input, 1, 0, true)
	d.app.SetRoot(d.rows, true)

	d.input.SetAutocompleteFunc(func(t string) (entries []string) {
		if cmd, arg, ok := strings.Cut(t, " "); ok {
			switch cmd {
			case "b", "break", "d", "debug", "w", "w2", "watch", "watch2":
				for _, s := range d.symbols().withLabelPrefix(arg) {
					entries = append(entries, cmd+" "+s.label)
				}
			}
		}
		return
	})
	d.input.SetAutocompletedFunc(func(t string, index, src int) bool {
		if src != tview.AutocompletedNavigate {
			d.input.SetText(t)
		}
		return src == tview.AutocompletedEnter || src == tview.AutocompletedClick
	})
	d.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		cmd := d.input.GetText()
		if cmd == "" {
			return
		}
		d.input.SetText("")
		if cmd == "exit" {
			d.app.Stop()
			return
		}
		if cmd, arg, ok := strings.Cut(cmd, " "); ok {
			switch cmd {
			case "b", "break", "d", "debug":
				s, ok := d.symbols().resolve(arg)
				if !ok {
					log.Printf("invalid addr %q", arg)
					return
				}
				switch cmd[0] {
				case 'b':
					d.run.Debug("break", int(s.addr))
					d.brk = &s
					log.Printf("set break %.4x", s.addr)
				case 'd':
					d.run.Debug("trace", int(s.addr))
					d.dbg = &s
					log.Printf("set debug %.4x", s.addr)
				}
				return
			case "w", "w2", "watch", "watch2":
				s, ok := d.symbols().resolve(arg)
				if !ok {
					log.Printf("invalid address %q", arg)
					return
				}
				d.mu.Lock()
				d.watches = append(d.watches,
					watch{symbol: s, word: strings.HasSuffix(cmd, "2")})
				d.mu.Unlock()
				log.Printf("watching %.4x", s.addr)
				return
			}
		}
		switch cmd {
		case "b", "break":
			d.run.Debug("break", -1)
			d.brk = nil
			log.Print("cleared break")
		case "d", "debug":
			d.run.Debug("trace", -1)
			d.dbg = nil
			log.Print("cleared debug")
		case "p", "pause":
			d.run.Debug("pause", 0)
		case "s", "step":
			d.run.Debug("step", 0)
		case "c", "cont":
			d.run.Debug("cont", 0)
		default:
			log.Printf("unknown command %q", cmd)
		}
	})
	return d
}

func (d *debugger) Run() error { return d.app.Run() }

// StateFunc feeds machine state updates to the display. It is called
// from the runner's goroutine while the CPU is quiescent.
func (d *debugger) StateFunc(c *i8080.CPU, k machine.StateKind) {
	var (
		watch = d.watchContent(c)
		state string
	)
	if k != machine.ClearState && k != machine.QuietState {
		state = stateMsg(d.symbols(), c, k)
	}
	d.app.QueueUpdateDraw(func() {
		switch k {
		case machine.DebugState, machine.ClearState:
			d.state.SetTextColor(tcell.ColorBlack)
			d.state.SetBackgroundColor(tcell.ColorDarkGrey)
		case machine.BreakState:
			d.state.SetTextColor(tcell.ColorYellow)
			d.state.SetBackgroundColor(tcell.ColorDarkBlue)
		case machine.PauseState:
			d.state.SetTextColor(tcell.ColorWhite)
			d.state.SetBackgroundColor(tcell.ColorDarkBlue)
		case machine.HaltState:
			d.state.SetTextColor(tcell.ColorWhite)
			d.state.SetBackgroundColor(tcell.ColorDarkRed)
		}
		d.watch.SetText(watch)
		if k != machine.QuietState {
			d.state.SetText(state)
		}
	})
}

func stateMsg(syms symbols, c *i8080.CPU, k machine.StateKind) string {
	var (
		op    = i8080.Op(c.Mem[c.PC])
		pcSym string
	)
	if s := syms.forAddr(c.PC); len(s) > 0 {
		pcSym = " " + s[0].String()
	}
	instr := op.String()
	switch op.Len() {
	case 2:
		instr = fmt.Sprintf("%s %.2x", instr, c.Mem[c.PC+1])
	case 3:
		instr = fmt.Sprintf("%s %.2x%.2x", instr, c.Mem[c.PC+2], c.Mem[c.PC+1])
	}
	kind := "       "
	switch k {
	case machine.BreakState:
		kind = "[break]"
	case machine.DebugState:
		kind = "[debug]"
	case machine.PauseState:
		kind = "[pause]"
	case machine.HaltState:
		kind = "[HALT!]"
	}
	return fmt.Sprintf("%.4x %- 12s %s%s\na: %.2x f: %s bc: %.4x de: %.4x hl: %.4x sp: %.4x\n",
		c.PC, instr, kind, pcSym,
		c.A(), flagString(c), c.BC.Value(), c.DE.Value(), c.HL.Value(), c.SP)
}

func flagString(c *i8080.CPU) string {
	var b strings.Builder
	for _, f := range []i8080.Flag{i8080.Sign, i8080.Zero, i8080.AuxCarry, i8080.Parity, i8080.Carry} {
		if c.Flag(f) {
			b.WriteString(f.String())
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func (d *debugger) watchContent(c *i8080.CPU) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	if s := d.brk; s != nil {
		fmt.Fprintf(&b, "%s [%.4x] brk!\n", s.label, s.addr)
	}
	if s := d.dbg; s != nil {
		fmt.Fprintf(&b, "%s [%.4x] dbg?\n", s.label, s.addr)
	}
	for _, w := range d.watches {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s [%.4x] ", w.label, w.addr)
		if w.word {
			fmt.Fprintf(&b, "%.2x%.2x", c.Mem[w.addr+1], c.Mem[w.addr])
		} else {
			fmt.Fprintf(&b, "  %.2x", c.Mem[w.addr])
		}
	}
	return b.String()
}
