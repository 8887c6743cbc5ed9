package window

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

type fakeJournal struct {
	saved []storage.Match
}

func (j *fakeJournal) SaveMatch(m storage.Match) (int64, error) {
	j.saved = append(j.saved, m)
	return int64(len(j.saved)), nil
}

// driver feeds scripted keys and clock ticks to a Game.
type driver struct {
	keys map[ebiten.Key]bool
	now  time.Time
}

func newDriven(opts Options) (*Game, *driver) {
	d := &driver{keys: map[ebiten.Key]bool{}, now: time.Unix(1000, 0)}
	g := New(opts)
	g.pressed = func(k ebiten.Key) bool { return d.keys[k] }
	g.now = func() time.Time { return d.now }
	return g, d
}

func (d *driver) advance(dt time.Duration) {
	d.now = d.now.Add(dt)
}

func TestQuadRectFlipsY(t *testing.T) {
	tests := []struct {
		name       string
		pos, size  core.Vec2
		scale      float64
		x, y, w, h float32
	}{
		{"ball at centre", core.V2(320, 240), core.V2(10, 10), 1, 315, 235, 10, 10},
		{"left paddle", core.V2(32, 240), core.V2(10, 60), 1, 27, 210, 10, 60},
		{"top edge", core.V2(5, 475), core.V2(10, 10), 1, 0, 0, 10, 10},
		{"scaled", core.V2(5, 5), core.V2(10, 10), 2, 0, 940, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := QuadRect(tc.pos, tc.size, pong.FieldHeight, tc.scale)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("QuadRect() = (%v, %v, %v, %v), expected (%v, %v, %v, %v)",
					x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}

func TestTone(t *testing.T) {
	clip := Tone(440, 60*time.Millisecond, SampleRate)

	frames := 2646
	if len(clip) != frames*4 {
		t.Fatalf("len = %d, expected %d", len(clip), frames*4)
	}

	first := int16(binary.LittleEndian.Uint16(clip[0:]))
	right := int16(binary.LittleEndian.Uint16(clip[2:]))
	if first == 0 || first != right {
		t.Errorf("first frame = (%d, %d), expected equal non-zero channels", first, right)
	}

	last := int16(binary.LittleEndian.Uint16(clip[len(clip)-4:]))
	if last > 300 || last < -300 {
		t.Errorf("last sample = %d, expected the fade to end near silence", last)
	}
}

func TestRGBAFallsBack(t *testing.T) {
	if RGBA(core.Color(200)) != RGBA(core.ColorDefault) {
		t.Error("unknown color should use the default")
	}
	if RGBA(core.ColorCyan) == RGBA(core.ColorDefault) {
		t.Error("cyan should differ from the default")
	}
}

func TestUpdateServesAndIntegrates(t *testing.T) {
	g, d := newDriven(Options{})

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.Pong().State() != pong.StateWaitingForPlayers {
		t.Fatalf("State() = %v, expected waiting", g.Pong().State())
	}

	d.keys[ebiten.KeySpace] = true
	d.advance(100 * time.Millisecond)
	_ = g.Update()
	if g.Pong().State() != pong.StateRunning {
		t.Fatalf("State() = %v, expected running", g.Pong().State())
	}

	d.keys[ebiten.KeyW] = true
	before := g.Pong().World().Paddles[pong.SideLeft].Pos.Y
	d.advance(100 * time.Millisecond)
	_ = g.Update()
	if got := g.Pong().World().Paddles[pong.SideLeft].Pos.Y; got <= before {
		t.Errorf("paddle y = %v, expected W to move it up from %v", got, before)
	}
}

func TestUpdatePauseDropsInterval(t *testing.T) {
	g, d := newDriven(Options{})
	_ = g.Update()
	d.keys[ebiten.KeySpace] = true
	d.advance(10 * time.Millisecond)
	_ = g.Update()

	d.keys[ebiten.KeyP] = true
	_ = g.Update()
	d.keys[ebiten.KeyP] = false
	frozen := g.Pong().Snapshot()

	d.advance(3 * time.Second)
	_ = g.Update()
	if g.Pong().Snapshot() != frozen {
		t.Error("paused window should not step the game")
	}

	d.keys[ebiten.KeyEscape] = true
	_ = g.Update()
	if g.paused {
		t.Fatal("escape should resume")
	}
	if got := g.Pong().World().Ball.Pos; got != frozen.Ball.Pos {
		t.Errorf("ball = %v after resume, expected no step across the pause", got)
	}
}

func TestUpdateQuitTerminatesAndJournals(t *testing.T) {
	journal := &fakeJournal{}
	g, d := newDriven(Options{Journal: journal, Player: "carol"})
	_ = g.Update()

	d.keys[ebiten.KeyQ] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	g.finish()

	if len(journal.saved) != 1 {
		t.Fatalf("journal entries = %d, expected 1", len(journal.saved))
	}
	if got := journal.saved[0]; got.Frontend != "window" || got.Player != "carol" || got.EndReason != storage.EndQuit {
		t.Errorf("entry = %+v", got)
	}
}

func TestCopyFrame(t *testing.T) {
	var copied string
	g, d := newDriven(Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})
	_ = g.Update()

	d.keys[ebiten.KeyControl] = true
	d.keys[ebiten.KeyY] = true
	_ = g.Update()

	if g.status != "state copied" || !strings.HasPrefix(copied, "frame=") {
		t.Errorf("status = %q clipboard = %q", g.status, copied)
	}
}

type call struct {
	op   string
	text string
}

type recordingRenderer struct {
	calls []call
}

func (r *recordingRenderer) PreRender() { r.calls = append(r.calls, call{op: "pre"}) }
func (r *recordingRenderer) PrepareQuadPass() {}
func (r *recordingRenderer) RenderQuad(_, _ core.Vec2) { r.calls = append(r.calls, call{op: "quad"}) }
func (r *recordingRenderer) PrepareTextPass() {}
func (r *recordingRenderer) RenderText(s string, _ core.Vec2, _ float64) {
	r.calls = append(r.calls, call{op: "text", text: s})
}
func (r *recordingRenderer) PostRender() { r.calls = append(r.calls, call{op: "post"}) }

func TestStatusLineInsideFrame(t *testing.T) {
	g, d := newDriven(Options{})
	_ = g.Update()
	d.keys[ebiten.KeyP] = true
	_ = g.Update()

	rec := &recordingRenderer{}
	g.Pong().Render(withStatus{Renderer: rec, line: g.statusLine()})

	if len(rec.calls) < 3 {
		t.Fatalf("calls = %+v, expected a full frame", rec.calls)
	}
	if rec.calls[0].op != "pre" || rec.calls[len(rec.calls)-1].op != "post" {
		t.Fatalf("frame not bracketed: %+v", rec.calls)
	}

	status := rec.calls[len(rec.calls)-2]
	if status.op != "text" || status.text != "YOU 0 : 0 CPU  PAUSED" {
		t.Errorf("last draw before PostRender = %+v, expected the status line", status)
	}
	for _, c := range rec.calls[:len(rec.calls)-2] {
		if c.op == "post" {
			t.Error("PostRender ran before the status line was drawn")
		}
	}
}
