package scanner

// maxLookahead is the number of tokens that may be pushed back at once.
// The grammar never needs more than two.
const maxLookahead = 3

// ring holds the most recently scanned tokens. index is the slot of the
// current token; lookahead counts the slots after it that were pushed back
// and will be handed out again before anything new is scanned.
type ring struct {
	slots     [maxLookahead + 1]Token
	index     int
	lookahead int
}

func (r *ring) current() *Token {
	return &r.slots[r.index]
}

// replay advances to the next pushed-back token, if any.
func (r *ring) replay() (*Token, bool) {
	if r.lookahead == 0 {
		return nil, false
	}
	r.lookahead--
	r.index = (r.index + 1) % len(r.slots)
	return &r.slots[r.index], true
}

// next advances to a fresh slot for a newly scanned token.
func (r *ring) next() *Token {
	r.index = (r.index + 1) % len(r.slots)
	return &r.slots[r.index]
}

// peek returns the token the next replay would yield.
func (r *ring) peek() *Token {
	return &r.slots[(r.index+1)%len(r.slots)]
}

// unget pushes the current token back. Exceeding maxLookahead would make
// the ring overwrite a token still waiting to be replayed, so it panics.
func (r *ring) unget() {
	if r.lookahead == maxLookahead {
		panic(ErrTooMuchLookahead)
	}
	r.lookahead++
	r.index = (r.index + len(r.slots) - 1) % len(r.slots)
}
