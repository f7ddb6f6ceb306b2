package scene

import (
	"container/heap"
	"time"
)

type (
	// Scheduler is a queue of commands to run at given points of the scene
	// clock. It never blocks and has no goroutines: the owner calls Due with
	// the current time, typically once per frame, and runs what it returns.
	// Commands due at the same time come out in the order they were queued.
	Scheduler struct {
		now     time.Duration
		seq     uint64
		entries entryHeap
	}

	entry struct {
		at  time.Duration
		seq uint64
		cmd Command
	}

	entryHeap []entry
)

// Now returns the time of the latest Due call.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// At queues cmd to run at time t. Times in the past run on the next Due.
func (s *Scheduler) At(t time.Duration, cmd Command) {
	heap.Push(&s.entries, entry{at: t, seq: s.seq, cmd: cmd})
	s.seq++
}

// After queues cmd to run d after the current time.
func (s *Scheduler) After(d time.Duration, cmd Command) {
	s.At(s.now+max(d, 0), cmd)
}

// Due advances the clock to now and returns the commands whose time has come,
// in order. The clock never goes backwards.
func (s *Scheduler) Due(now time.Duration) []Command {
	s.now = max(s.now, now)
	var ret []Command
	for len(s.entries) > 0 && s.entries[0].at <= s.now {
		e := heap.Pop(&s.entries).(entry)
		ret = append(ret, e.cmd)
	}
	return ret
}

// Pending returns the number of queued commands.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// Next returns the time of the earliest queued command.
func (s *Scheduler) Next() (time.Duration, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[0].at, true
}

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	old[len(old)-1] = entry{}
	*h = old[:len(old)-1]
	return e
}
