package bfvm

// Queue is an unbounded FIFO of bytes.
type Queue struct {
	buf  []byte
	head int
}

func (q *Queue) Push(bs ...byte) {
	if q.head > 0 && q.head >= len(q.buf)/2 {
		n := copy(q.buf, q.buf[q.head:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	q.buf = append(q.buf, bs...)
}

func (q *Queue) Pop() (byte, bool) {
	if q.head >= len(q.buf) {
		return 0, false
	}
	b := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.buf = q.buf[:0]
		q.head = 0
	}
	return b, true
}

func (q *Queue) Len() int {
	return len(q.buf) - q.head
}

// PopN removes up to n bytes, all of them if n is negative.
func (q *Queue) PopN(n int) []byte {
	if n < 0 || n > q.Len() {
		n = q.Len()
	}
	ret := append([]byte(nil), q.buf[q.head:q.head+n]...)
	q.head += n
	if q.head == len(q.buf) {
		q.buf = q.buf[:0]
		q.head = 0
	}
	return ret
}

// Bytes returns a copy of pending bytes without removing them.
func (q *Queue) Bytes() []byte {
	return append([]byte(nil), q.buf[q.head:]...)
}
