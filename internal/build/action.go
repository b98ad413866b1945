package build

import "container/heap"

// Priority orders actions; lower runs first.
type Priority int

// Priorities used by the processors.
const (
	PriorityEarly   Priority = -100
	PriorityDefault Priority = 0
	// PriorityLink runs structural merges after every feature has resolved
	// its node references.
	PriorityLink    Priority = 50
	PriorityRewrite Priority = 100
	PriorityLate    Priority = 200
)

// Action is one unit of work contributed by a feature.
type Action struct {
	Name     string
	Priority Priority
	Run      func(s *Session) error
}

// queued is an action bound to its feature and insertion number.
type queued struct {
	action  Action
	feature *Feature
	seq     int
}

// actionQueue is a min-heap on (priority, seq).
type actionQueue []queued

func (q actionQueue) Len() int { return len(q) }

func (q actionQueue) Less(i, j int) bool {
	if q[i].action.Priority != q[j].action.Priority {
		return q[i].action.Priority < q[j].action.Priority
	}

	return q[i].seq < q[j].seq
}

func (q actionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *actionQueue) Push(x any) { *q = append(*q, x.(queued)) }

func (q *actionQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]

	return x
}

// scheduler hands out queued actions in order.
type scheduler struct {
	q     actionQueue
	next  int
	total int
}

func (s *scheduler) push(f *Feature, a Action) {
	heap.Push(&s.q, queued{action: a, feature: f, seq: s.next})
	s.next++
	s.total++
}

func (s *scheduler) pop() (queued, bool) {
	if s.q.Len() == 0 {
		return queued{}, false
	}

	return heap.Pop(&s.q).(queued), true
}

func (s *scheduler) pending() int {
	return s.q.Len()
}
