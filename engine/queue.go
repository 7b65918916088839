package engine

// maxDrainRounds bounds how often tasks queued while draining are picked up
// in the same drain.
const maxDrainRounds = 16

// Queue holds functions deferred to the end of the current pass.
type Queue struct {
	tasks []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

// Len returns the number of queued functions.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Drain runs the queued functions in order. Functions queued while draining
// run in the same drain, up to maxDrainRounds rounds; the rest stay queued.
func (q *Queue) Drain() {
	for round := 0; round < maxDrainRounds && len(q.tasks) > 0; round++ {
		tasks := q.tasks
		q.tasks = nil
		for _, task := range tasks {
			task()
		}
	}
}

// Reset drops every queued function.
func (q *Queue) Reset() {
	q.tasks = nil
}
