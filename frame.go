package kinetic

import (
	"context"
	"errors"
	"time"
)

// FrameFunc is called once per frame with the elapsed time in seconds.
type FrameFunc func(dt float64)

type frameTask struct {
	id      uint32
	fn      FrameFunc
	stopped bool
}

// frameScheduler runs per-frame tasks in registration order. Tasks stopped
// during a run are skipped for the rest of that run and swept afterwards;
// tasks added during a run first execute on the next frame.
type frameScheduler struct {
	tasks   []*frameTask
	pending []*frameTask
	running bool
	nextID  uint32
}

// FrameHandle stops a per-frame task. The zero value is a no-op handle.
type FrameHandle struct {
	task *frameTask
}

// Stop cancels the task. It is safe to call more than once and from inside
// the task itself.
func (h FrameHandle) Stop() {
	if h.task != nil {
		h.task.stopped = true
	}
}

// Active reports whether the task is still scheduled.
func (h FrameHandle) Active() bool {
	return h.task != nil && !h.task.stopped
}

func (f *frameScheduler) add(fn FrameFunc) FrameHandle {
	f.nextID++
	t := &frameTask{id: f.nextID, fn: fn}
	if f.running {
		f.pending = append(f.pending, t)
	} else {
		f.tasks = append(f.tasks, t)
	}
	return FrameHandle{task: t}
}

func (f *frameScheduler) run(dt float64) {
	f.running = true
	for _, t := range f.tasks {
		if !t.stopped {
			t.fn(dt)
		}
	}
	f.running = false

	live := f.tasks[:0]
	for _, t := range f.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(f.tasks); i++ {
		f.tasks[i] = nil
	}
	f.tasks = append(live, f.pending...)
	for i := range f.pending {
		f.pending[i] = nil
	}
	f.pending = f.pending[:0]
}

func (f *frameScheduler) len() int {
	n := 0
	for _, t := range f.tasks {
		if !t.stopped {
			n++
		}
	}
	for _, t := range f.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// OnFrame schedules fn to run every frame until the returned handle is
// stopped. If owner is non-nil the task also stops when owner is disposed.
func (s *Scene) OnFrame(owner *Element, fn FrameFunc) FrameHandle {
	h := s.frames.add(fn)
	if owner != nil {
		owner.OnDispose(h.Stop)
	}
	return h
}

// ErrBadFPS is returned by RunHeadless for a non-positive frame rate.
var ErrBadFPS = errors.New("kinetic: fps must be positive")

// RunHeadless drives the scene from a wall-clock ticker without a window
// until ctx is done, stepping with the measured elapsed time. It returns
// ctx.Err() on cancellation. Input comes only from injected events.
func RunHeadless(ctx context.Context, s *Scene, fps int) error {
	if fps <= 0 {
		return ErrBadFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Step(dt)
		}
	}
}
