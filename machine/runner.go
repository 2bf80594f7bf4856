package machine

import (
	"log"

	"github.com/mkb/i80/i8080"
)

// StateKind tells a StateFunc why it is being called.
type StateKind int

const (
	// QuietState is a periodic refresh; watch views should update
	// but any status message should be left alone.
	QuietState StateKind = iota
	// ClearState reports that execution resumed.
	ClearState
	// DebugState reports that execution passed a trace address.
	DebugState
	// BreakState reports that execution stopped at a breakpoint.
	BreakState
	// PauseState reports that execution paused on request.
	PauseState
	// HaltState reports that the machine stopped for good.
	HaltState
)

// StateFunc receives machine state updates, typically to drive a
// debugger display. It is called from the runner's goroutine; the CPU
// is quiescent for the duration of the call.
type StateFunc func(c *i8080.CPU, k StateKind)

// Runner drives a Machine, delivering device interrupts between
// instructions and serving debugger commands and dev-mode machine
// swaps. The zero value is not usable; call NewRunner.
type Runner struct {
	gui   bool
	dev   bool
	state StateFunc

	swap     chan *Machine
	swapDone chan bool
	cmds     chan command

	code int
}

type command struct {
	name string
	addr int
}

// NewRunner returns a Runner. If enableGUI is set, Run opens the
// front-panel memory window. If devMode is set, Run keeps serving
// Swap after the program stops instead of returning. state may be
// nil.
func NewRunner(enableGUI, devMode bool, state StateFunc) *Runner {
	return &Runner{
		gui:      enableGUI,
		dev:      devMode,
		state:    state,
		swap:     make(chan *Machine),
		swapDone: make(chan bool),
		cmds:     make(chan command, 16),
	}
}

// Swap replaces the running machine with m, used by dev mode after a
// program reload. It must not be called unless Run is running in dev
// mode.
func (r *Runner) Swap(m *Machine) {
	if !r.dev {
		panic("Swap called while not running in dev mode")
	}
	r.swap <- m
	<-r.swapDone
}

// Debug queues a debugger command for the run loop. Commands are:
// break and trace with an address (addr -1 clears), pause, step,
// cont, and exit.
func (r *Runner) Debug(cmd string, addr int) {
	select {
	case r.cmds <- command{cmd, addr}:
	default:
		log.Printf("debug command %q dropped", cmd)
	}
}

// Run executes m until its program stops it, the CPU halts beyond
// recovery, or a debugger exit. It returns the machine's exit code.
// In GUI mode Run must be called from the main goroutine.
func (r *Runner) Run(m *Machine) int {
	var (
		g    = newGUI(r.gui)
		exit = make(chan bool)
	)
	go func() {
		defer close(exit)
		for {
			next := r.exec(m, g)
			if next == nil {
				return
			}
			m = next
			g.Swap(m)
		}
	}()
	if r.gui {
		// Run drives the window until exit is closed.
		if err := g.Run(exit); err != nil {
			log.Fatalf("gui: %v", err)
		}
	} else {
		<-exit
	}
	return r.code
}

// exec runs one machine until it stops or is swapped. It returns the
// replacement machine after a swap and nil otherwise.
func (r *Runner) exec(m *Machine, g *GUI) *Machine {
	var (
		cpu    = m.CPU
		brk    = -1
		trace  = -1
		paused = false
		wake   = false // console input arrived, interrupt not yet delivered
		steps  = 0
	)
	g.Swap(m)
	for {
		// Drain debugger commands, blocking while paused.
		for {
			var c command
			if paused {
				r.notify(cpu, PauseState)
				select {
				case c = <-r.cmds:
				case next := <-r.swap:
					r.swapDone <- true
					return next
				}
			} else {
				select {
				case c = <-r.cmds:
				default:
				}
			}
			if c.name == "" {
				break
			}
			switch c.name {
			case "break":
				brk = c.addr
			case "trace":
				trace = c.addr
			case "pause":
				paused = true
			case "step":
				if paused {
					break
				}
				continue
			case "cont":
				paused = false
				r.notify(cpu, ClearState)
			case "exit":
				r.code = m.ExitCode()
				r.notify(cpu, HaltState)
				return nil
			}
			if c.name == "step" {
				break // execute one instruction, then pause again
			}
			if paused {
				continue
			}
			break
		}

		select {
		case next := <-r.swap:
			r.swapDone <- true
			return next
		case <-m.halt:
			return r.stop(cpu, m)
		case <-m.con.Ready:
			wake = true
		case g.Update <- true:
			<-g.UpdateDone
		default:
		}

		// Input interrupts are held until the CPU can accept them,
		// then delivered as RST 7.
		if wake && m.con.IRQEnabled() && cpu.InterruptsEnabled() {
			cpu.Interrupt(0xff)
			wake = false
		} else if cpu.Halted() && !cpu.InterruptsEnabled() {
			// Nothing can wake it; the program is done.
			return r.stop(cpu, m)
		} else if cpu.Halted() {
			select {
			case next := <-r.swap:
				r.swapDone <- true
				return next
			case <-m.halt:
				return r.stop(cpu, m)
			case <-m.con.Ready:
				wake = true
			}
			continue
		}

		if int(cpu.PC) == trace {
			r.notify(cpu, DebugState)
		}
		if int(cpu.PC) == brk && !paused {
			paused = true
			r.notify(cpu, BreakState)
			continue
		}

		cpu.Step()
		if m.sys.Stopped() {
			return r.stop(cpu, m)
		}

		if steps++; steps%4096 == 0 {
			r.notify(cpu, QuietState)
		}
	}
}

// stop records the machine's exit code. In dev mode it blocks until
// the next Swap so that a stopped program can be reloaded.
func (r *Runner) stop(cpu *i8080.CPU, m *Machine) *Machine {
	r.code = m.ExitCode()
	r.notify(cpu, HaltState)
	if !r.dev {
		return nil
	}
	log.Printf("stopped (exit code %d); waiting for reload", r.code)
	for {
		select {
		case next := <-r.swap:
			r.swapDone <- true
			return next
		case c := <-r.cmds:
			if c.name == "exit" {
				return nil
			}
		}
	}
}

func (r *Runner) notify(cpu *i8080.CPU, k StateKind) {
	if r.state != nil {
		r.state(cpu, k)
	}
}
