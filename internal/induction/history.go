package induction

// Sample is one downsampled history point. Time is in seconds.
type Sample struct {
	Time float64 `json:"time"`
	Flux float64 `json:"flux"`
	EMF  float64 `json:"emf"`
}

// History is a fixed-capacity FIFO of samples. Appending past capacity
// evicts the oldest entry.
type History struct {
	buf  []Sample
	head int
	size int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Sample, capacity)}
}

func (h *History) Push(s Sample) {
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

func (h *History) Len() int { return h.size }
func (h *History) Cap() int { return len(h.buf) }

// Samples returns a copy, oldest first.
func (h *History) Samples() []Sample {
	out := make([]Sample, h.size)
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}

func (h *History) Latest() (Sample, bool) {
	if h.size == 0 {
		return Sample{}, false
	}
	return h.buf[(h.head-1+len(h.buf))%len(h.buf)], true
}

func (h *History) Clear() {
	h.head = 0
	h.size = 0
}
