package machine

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// panelSize is the front panel resolution: one pixel per memory byte.
var panelSize = image.Point{0x100, 0x100}

// GUI displays a front panel window that renders machine memory as a
// 256x256 grid of grayscale pixels, one per byte, with the program
// counter marked in red. The runner offers a snapshot handshake on
// Update between instructions; the GUI copies machine state during
// the handshake and releases the runner via UpdateDone.
//
// A disabled GUI has nil channels, so the runner's handshake send
// never fires.
type GUI struct {
	Update     chan bool
	UpdateDone chan bool

	m     *Machine
	snap  []byte
	pc    uint16
	dirty bool

	buf screen.Buffer
	tex screen.Texture
}

func newGUI(enabled bool) *GUI {
	if !enabled {
		return &GUI{}
	}
	return &GUI{
		Update:     make(chan bool),
		UpdateDone: make(chan bool),
		snap:       make([]byte, 64*1024),
	}
}

// Swap points the GUI at m. It is called from the runner's goroutine,
// which never swaps mid-handshake, so the GUI only reads m while the
// runner is blocked on UpdateDone.
func (g *GUI) Swap(m *Machine) { g.m = m }

// Run opens the window and drives it until exit is closed or the
// window is dismissed. It must be called from the main goroutine.
func (g *GUI) Run(exit <-chan bool) error {
	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  "i80",
			Width:  panelSize.X * 2,
			Height: panelSize.Y * 2,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer w.Release()

		type update struct{}
		go func() {
			t := time.NewTicker(time.Second / 60)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					w.Send(update{})
				case <-exit:
					return
				}
			}
		}()

		defer g.release()

		var sz size.Event
		for {
			e := w.NextEvent()

			switch e := e.(type) {
			case update:
			case paint.Event:
			case size.Event:
			case lifecycle.Event:
			default:
				format := "got %#v\n"
				if _, ok := e.(fmt.Stringer); ok {
					format = "got %v\n"
				}
				log.Printf(format, e)
			}

			select {
			case <-exit:
				return
			default:
			}

			switch e := e.(type) {
			case size.Event:
				sz = e
				if sz.WidthPx+sz.HeightPx == 0 {
					return
				}

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case update:
				select {
				case <-g.Update:
					copy(g.snap, g.m.Mem)
					g.pc = g.m.CPU.PC
					g.dirty = true
					g.UpdateDone <- true
				default:
					// cpu is busy
				}
				if !g.dirty {
					break
				}
				if err := g.render(s); err != nil {
					log.Fatalf("render: %v", err)
				}
				g.tex.Upload(image.Point{}, g.buf, g.buf.Bounds())
				w.Scale(sz.Bounds(), g.tex, g.tex.Bounds(), draw.Src, nil)
				w.Publish()
				g.dirty = false

			case error:
				log.Print(e)
			}
		}
	})
	return nil
}

func (g *GUI) render(s screen.Screen) (err error) {
	if g.buf == nil {
		if g.buf, err = s.NewBuffer(panelSize); err != nil {
			return
		}
		if g.tex, err = s.NewTexture(panelSize); err != nil {
			return
		}
	}
	pix := g.buf.RGBA().Pix
	for i, b := range g.snap {
		o := i * 4
		pix[o], pix[o+1], pix[o+2], pix[o+3] = b, b, b, 0xff
	}
	o := int(g.pc) * 4
	pix[o], pix[o+1], pix[o+2] = 0xff, 0x30, 0x30
	return
}

func (g *GUI) release() {
	if g.tex != nil {
		g.tex.Release()
	}
	if g.buf != nil {
		g.buf.Release()
	}
}
