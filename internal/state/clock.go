package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// gestureClock hands out IDs for drag gestures. The session part is
// random per controller, the counter orders gestures within a session.
type gestureClock struct {
	session string
	seq     uint64
}

func newGestureClock() *gestureClock {
	return &gestureClock{session: uuid.NewString()[:8]}
}

func (c *gestureClock) next() string {
	return fmt.Sprintf("%s-%d", c.session, atomic.AddUint64(&c.seq, 1))
}
