package server

// SendQueue is the outbound side of a client connection: an ordered list
// of wire messages plus a cursor into the front entry, so a partially
// written message resumes where it stopped.
type SendQueue struct {
	entries [][]byte
	offset  int // consumed bytes of entries[0]
	bytes   int // unsent bytes across all entries
}

// Queue appends one wire message. Empty messages are dropped.
func (q *SendQueue) Queue(msg string) {
	if msg == "" {
		return
	}
	q.entries = append(q.entries, []byte(msg))
	q.bytes += len(msg)
}

// Pending reports whether any unsent bytes remain.
func (q *SendQueue) Pending() bool {
	return q.bytes > 0
}

// Bytes returns the total number of unsent bytes.
func (q *SendQueue) Bytes() int {
	return q.bytes
}

// Peek returns the front unsent slice, or nil when the queue is empty.
func (q *SendQueue) Peek() []byte {
	if len(q.entries) == 0 {
		return nil
	}
	return q.entries[0][q.offset:]
}

// Consume advances the cursor by n bytes. n may span several entries;
// fully consumed entries are popped.
func (q *SendQueue) Consume(n int) {
	for n > 0 && len(q.entries) > 0 {
		remain := len(q.entries[0]) - q.offset
		if n >= remain {
			n -= remain
			q.bytes -= remain
			q.offset = 0
			q.entries = q.entries[1:]
		} else {
			q.offset += n
			q.bytes -= n
			n = 0
		}
	}
}

// Clear drops everything, sent or not.
func (q *SendQueue) Clear() {
	q.entries = nil
	q.offset = 0
	q.bytes = 0
}
