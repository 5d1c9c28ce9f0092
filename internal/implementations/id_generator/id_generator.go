package idgenerator

import (
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"strconv"
	"sync"
	"time"
)

// Millis issues decimal millisecond timestamps. An ID that would repeat or go
// backwards is bumped to one past the previous ID.
type Millis struct {
	now  func() time.Time
	last int64
	lock sync.Mutex
}

func NewMillis(now func() time.Time) *Millis {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Millis{now: now}
}

func (g *Millis) GenerateID() reminder.ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return reminder.ID(strconv.FormatInt(ms, 10))
}
