package argdef

// Queue is an exclusively owned cursor over a token sequence. The active
// parsing or matching step mutates it in place; ownership of the remainder
// passes transiently to whichever spec's Consume is invoked so that call can
// pull follow-on tokens (a value after a bare flag) before returning.
type Queue struct {
	items []string
}

// NewQueue returns a queue over a copy of the given tokens.
func NewQueue(tokens []string) *Queue {
	items := make([]string, len(tokens))
	copy(items, tokens)

	return &Queue{items: items}
}

// Pop removes and returns the front token. The second result is false when
// the queue is exhausted.
func (q *Queue) Pop() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}

	tok := q.items[0]
	q.items = q.items[1:]

	return tok, true
}

// PushFront returns a token to the front of the queue, undoing a Pop.
func (q *Queue) PushFront(tok string) {
	q.items = append([]string{tok}, q.items...)
}

// Len returns the number of tokens remaining.
func (q *Queue) Len() int {
	return len(q.items)
}

// Rest returns the remaining tokens without consuming them.
func (q *Queue) Rest() []string {
	rest := make([]string, len(q.items))
	copy(rest, q.items)

	return rest
}
