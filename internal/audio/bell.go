// Package audio provides terminal sound effects for the game.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// DefaultQueue is the number of pending effects a Bell buffers before it
// starts dropping new ones.
const DefaultQueue = 8

// bel is the ASCII bell control character.
const bel = "\a"

// Bell plays effects by ringing the terminal bell on w.
// Writes happen on a background goroutine so Play never blocks a frame.
type Bell struct {
	w      io.Writer
	logger *log.Logger

	events chan pong.Event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewBell starts a bell writing to w. A nil logger discards messages.
func NewBell(w io.Writer, logger *log.Logger) *Bell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Bell{
		w:      w,
		logger: logger,
		events: make(chan pong.Event, DefaultQueue),
		done:   make(chan struct{}),
	}

	b.wg.Add(1)
	go b.run()
	return b
}

// Play queues an effect. It is dropped when the queue is full.
func (b *Bell) Play(e pong.Event) {
	select {
	case b.events <- e:
	default:
		b.logger.Debug("sound dropped", "event", e)
	}
}

// Close flushes queued effects and stops the writer goroutine.
func (b *Bell) Close() error {
	b.once.Do(func() {
		close(b.done)
		b.wg.Wait()
	})
	return nil
}

func (b *Bell) run() {
	defer b.wg.Done()

	for {
		select {
		case e := <-b.events:
			b.ring(e)
		case <-b.done:
			for {
				select {
				case e := <-b.events:
					b.ring(e)
				default:
					return
				}
			}
		}
	}
}

func (b *Bell) ring(e pong.Event) {
	if _, err := io.WriteString(b.w, bel); err != nil {
		b.logger.Warn("bell write failed", "event", e, "err", err)
	}
}

var _ pong.Audio = (*Bell)(nil)
