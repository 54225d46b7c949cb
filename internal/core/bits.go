package core

// BitWriter packs bits into a byte slice most significant bit first. A byte
// is stored once eight bits have accumulated; Flush stores the final partial
// byte with its low bits zero.
type BitWriter struct {
	dst  []byte
	n    int
	acc  byte
	used uint8
}

// NewBitWriter returns a writer that fills dst from the start.
func NewBitWriter(dst []byte) BitWriter { return BitWriter{dst: dst} }

// PushBit appends one bit; any non-zero value counts as 1.
func (w *BitWriter) PushBit(bit uint8) {
	if bit != 0 {
		w.acc |= 1 << (7 - w.used)
	}
	w.used++
	if w.used == 8 {
		w.store()
	}
}

// Flush stores a pending partial byte and returns the number of bytes written.
func (w *BitWriter) Flush() int {
	if w.used > 0 {
		w.store()
	}
	return w.n
}

func (w *BitWriter) store() {
	w.dst[w.n] = w.acc
	w.n++
	w.acc = 0
	w.used = 0
}

// BitReader walks a packed buffer in the same order BitWriter fills it.
type BitReader struct {
	src   []byte
	i     int
	val   byte
	shift uint8
}

// NewBitReader returns a reader positioned at the first bit of src.
func NewBitReader(src []byte) BitReader { return BitReader{src: src} }

// Next returns the next bit.
func (r *BitReader) Next() uint8 {
	if r.shift == 0 {
		r.val = r.src[r.i]
		r.i++
		r.shift = 8
	}
	r.shift--
	return (r.val >> r.shift) & 1
}
