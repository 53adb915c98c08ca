package game

// MessageLogCapacity is how many log lines are retained.
const MessageLogCapacity = 5

// MessageLog is a fixed-capacity FIFO of game messages backed by a ring
// buffer. Once full, pushing a new message drops the oldest one; the
// capacity bound is structural, not trimmed after the fact.
type MessageLog struct {
	buf   [MessageLogCapacity]string
	start int
	count int
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Push appends a message, evicting the oldest if the log is full.
func (l *MessageLog) Push(msg string) {
	if l.count < MessageLogCapacity {
		l.buf[(l.start+l.count)%MessageLogCapacity] = msg
		l.count++
		return
	}
	l.buf[l.start] = msg
	l.start = (l.start + 1) % MessageLogCapacity
}

// Len returns the number of retained messages.
func (l *MessageLog) Len() int {
	return l.count
}

// All returns the retained messages, oldest first.
func (l *MessageLog) All() []string {
	out := make([]string, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.buf[(l.start+i)%MessageLogCapacity]
	}
	return out
}

// Recent returns up to n of the newest messages, oldest of them first.
func (l *MessageLog) Recent(n int) []string {
	if n > l.count {
		n = l.count
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = l.buf[(l.start+l.count-n+i)%MessageLogCapacity]
	}
	return out
}
