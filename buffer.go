package lineedit

// lineBuffer holds the bytes the user has typed so far. It is the unit of
// truth for the line being edited; the cursor offset lives on the Session.
// Growth is handled by append's geometric reallocation.
type lineBuffer struct {
	data []byte
}

func (b *lineBuffer) String() string {
	return string(b.data)
}

func (b *lineBuffer) length() int {
	return len(b.data)
}

// set replaces the content, reusing the existing allocation when possible.
func (b *lineBuffer) set(s string) {
	b.data = append(b.data[:0], s...)
}

func (b *lineBuffer) appendByte(c byte) {
	b.data = append(b.data, c)
}

// insert places c at offset i, shifting the tail right. i must be in [0, len].
func (b *lineBuffer) insert(i int, c byte) {
	b.data = append(b.data, 0)
	copy(b.data[i+1:], b.data[i:])
	b.data[i] = c
}

// delete removes the byte at offset i, shifting the tail left.
func (b *lineBuffer) delete(i int) {
	b.data = append(b.data[:i], b.data[i+1:]...)
}

func (b *lineBuffer) truncate(n int) {
	b.data = b.data[:n]
}

func (b *lineBuffer) reset() {
	b.data = b.data[:0]
}
