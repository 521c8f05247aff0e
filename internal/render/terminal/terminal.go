// Package terminal presents frames in a text terminal through tcell, packing
// two pixel rows into each cell with upper half blocks.
package terminal

import (
	"errors"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/render"
)

const (
	upperHalf  = '▀'
	defaultTPS = 60
)

// Engine drives a render.Game from a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *Input
	frame  *Frame
	tps    int
	log    *logrus.Entry
}

// NewEngine creates an engine on the controlling terminal. The screen is
// initialised by RunGame.
func NewEngine() (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewEngineWithScreen(screen), nil
}

// NewEngineWithScreen creates an engine on an existing screen, such as a
// tcell simulation screen.
func NewEngineWithScreen(screen tcell.Screen) *Engine {
	return &Engine{
		screen: screen,
		input:  NewInput(),
		frame:  &Frame{},
		tps:    defaultTPS,
		log:    logger.WithComponent("terminal"),
	}
}

// Input returns the input manager fed by this engine's events.
func (e *Engine) Input() render.InputManager {
	return e.input
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op.
func (e *Engine) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; terminals always resize.
func (e *Engine) SetWindowResizable(resizable bool) {}

// SetTPS sets how many updates run per second.
func (e *Engine) SetTPS(tps int) {
	if tps > 0 {
		e.tps = tps
	}
}

// RunGame runs the update/draw loop until the game returns an error, the
// game terminates, or the user presses Ctrl+C.
func (e *Engine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()
	e.screen.EnableMouse(tcell.MouseMotionEvents)
	e.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	e.log.WithField("tps", e.tps).Info("terminal loop started")
	for {
		start := time.Now()
		if e.drain(events) {
			e.log.Info("interrupted")
			return nil
		}

		cols, rows := e.screen.Size()
		w, h := game.Layout(cols, rows*2)
		e.frame.resize(w, h)
		if cols > 0 && rows > 0 {
			e.input.setScale(float64(w)/float64(cols), float64(h)/float64(rows))
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}
		game.Draw(e.frame)
		e.present(cols, rows)
		e.input.EndTick()

		if wait := time.Second/time.Duration(e.tps) - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
	}
}

// drain applies every queued event and reports whether quit was requested.
func (e *Engine) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
				continue
			}
			if e.input.Handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// present downsamples the frame onto the cell grid and shows it.
func (e *Engine) present(cols, rows int) {
	f := e.frame
	if f.w == 0 || f.h == 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			px := cx * f.w / cols
			top := f.colorAt(px, (2*cy)*f.h/(2*rows))
			bottom := f.colorAt(px, (2*cy+1)*f.h/(2*rows))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			e.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	e.screen.Show()
}

// Frame is the render.Image the game draws into between presents.
type Frame struct {
	w, h int
	pix  []byte
}

func (f *Frame) resize(w, h int) {
	if f.w == w && f.h == h {
		return
	}
	f.w, f.h = w, h
	f.pix = make([]byte, 4*w*h)
}

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

// Size returns the frame size in pixels.
func (f *Frame) Size() (width, height int) {
	return f.w, f.h
}

// WritePixels copies pix into the frame.
func (f *Frame) WritePixels(pix []byte) {
	copy(f.pix, pix)
}

func (f *Frame) colorAt(x, y int) tcell.Color {
	i := 4 * (y*f.w + x)
	return tcell.NewRGBColor(int32(f.pix[i]), int32(f.pix[i+1]), int32(f.pix[i+2]))
}
