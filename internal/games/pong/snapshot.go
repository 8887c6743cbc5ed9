package pong

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/xxh3"
)

// Snapshot is a flat copy of everything that drives the simulation.
type Snapshot struct {
	Frame         uint64
	State         State
	Ball          Entity
	Paddles       [2]Entity
	Score         [2]int
	QuitRequested bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:         g.frame,
		State:         g.state,
		Ball:          g.world.Ball.Entity,
		Paddles:       [2]Entity{g.world.Paddles[SideLeft].Entity, g.world.Paddles[SideRight].Entity},
		Score:         g.score,
		QuitRequested: g.quitRequested,
	}
}

// Hash returns a digest of the snapshot. Two runs fed the same inputs and
// time steps produce the same hash frame by frame.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 256)
	buf = binary.LittleEndian.AppendUint64(buf, s.Frame)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.State)) //nolint:gosec // small enum
	buf = appendEntity(buf, s.Ball)
	for _, p := range s.Paddles {
		buf = appendEntity(buf, p)
	}
	for _, pts := range s.Score {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(pts)) //nolint:gosec // score is never negative
	}
	if s.QuitRequested {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return xxh3.Hash(buf)
}

func appendEntity(buf []byte, e Entity) []byte {
	for _, f := range []float64{
		e.Pos.X, e.Pos.Y,
		e.Scale.X, e.Scale.Y,
		e.Velocity.X, e.Velocity.Y,
		e.Bounds.Min.X, e.Bounds.Min.Y,
		e.Bounds.Max.X, e.Bounds.Max.Y,
	} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
	}
	return buf
}

// String formats the snapshot for logs and the clipboard.
func (s Snapshot) String() string {
	return fmt.Sprintf(
		"frame=%d state=%s score=%d:%d ball=(%.1f,%.1f) vel=(%.1f,%.1f) left=%.1f right=%.1f hash=%016x",
		s.Frame, s.State, s.Score[SideLeft], s.Score[SideRight],
		s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Velocity.X, s.Ball.Velocity.Y,
		s.Paddles[SideLeft].Pos.Y, s.Paddles[SideRight].Pos.Y,
		s.Hash(),
	)
}
