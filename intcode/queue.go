package intcode

// Queue is a FIFO buffer of values.
type Queue []int64

// Push appends values to the tail of the queue.
func (q *Queue) Push(values ...int64) {
	*q = append(*q, values...)
}

// Pop removes and returns the head of the queue.
// Returns false if the queue is empty.
func (q *Queue) Pop() (int64, bool) {
	if len(*q) == 0 {
		return 0, false
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v, true
}

// Drain returns all queued values in order and empties the queue.
func (q *Queue) Drain() []int64 {
	out := q.Clone()
	*q = nil
	return out
}

func (q Queue) Len() int {
	return len(q)
}

// Clone returns a deep copy of the queue.
func (q Queue) Clone() Queue {
	if len(q) == 0 {
		return nil
	}
	out := make(Queue, len(q))
	copy(out, q)
	return out
}
