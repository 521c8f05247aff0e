package terminal

import (
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raymaze/internal/render"
)

func TestInputHoldsKeyWithinWindow(t *testing.T) {
	in := NewInput()
	clock := time.Unix(100, 0)
	in.now = func() time.Time { return clock }

	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !in.IsKeyPressed(render.KeyW) || !in.IsKeyJustPressed(render.KeyW) {
		t.Fatal("expected W pressed and just pressed")
	}

	in.EndTick()
	clock = clock.Add(holdWindow / 2)
	if !in.IsKeyPressed(render.KeyW) {
		t.Error("W released inside the hold window")
	}
	if in.IsKeyJustPressed(render.KeyW) {
		t.Error("W still just-pressed on the next tick")
	}

	clock = clock.Add(holdWindow)
	if in.IsKeyPressed(render.KeyW) {
		t.Error("W still held after the hold window")
	}
}

func TestInputRepeatIsNotJustPressed(t *testing.T) {
	in := NewInput()
	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	in.EndTick()
	in.Handle(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	if in.IsKeyJustPressed(render.KeyE) {
		t.Error("auto-repeat reported as a new press")
	}
}

func TestKeysFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []render.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []render.Key{render.KeyQ}},
		{"upper case sprints", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), []render.Key{render.KeyShift, render.KeyW}},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), []render.Key{render.KeyLeft}},
		{"zoom in", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), []render.Key{render.KeyControl, render.KeyEqual}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []render.Key{render.KeyEscape}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keysFor(tt.ev)
			if len(got) != len(tt.want) {
				t.Fatalf("keysFor = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("keysFor = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	in := NewInput()
	if !in.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C did not request quit")
	}
}

func TestPresentPacksTwoRowsPerCell(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(2, 1)

	e := NewEngineWithScreen(screen)
	e.frame.resize(2, 2)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// Red over blue in the left column.
	img.Pix[0], img.Pix[3] = 255, 255
	img.Pix[4*2+2], img.Pix[4*2+3] = 255, 255
	e.frame.WritePixels(img.Pix)

	e.present(2, 1)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != upperHalf {
		t.Fatalf("cell rune = %q, want %q", r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v, want blue", bg)
	}
}

type quittingGame struct{ ticks int }

func (g *quittingGame) Update() error {
	g.ticks++
	if g.ticks == 3 {
		return render.ErrTerminated
	}
	return nil
}
func (g *quittingGame) Draw(screen render.Image) {}
func (g *quittingGame) Layout(w, h int) (int, int) { return 8, 8 }

func TestRunGameStopsOnTermination(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(8, 4)
	e := NewEngineWithScreen(screen)
	e.SetTPS(1000)

	g := &quittingGame{}
	if err := e.RunGame(g); err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	if g.ticks != 3 {
		t.Errorf("ticks = %d, want 3", g.ticks)
	}
}
