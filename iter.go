package vtpush

// OwnedEventIterator is a pull-style wrapper around a Parser, restoring the
// "trivial derivative" §9 describes: collect owned events into a queue and
// drain them with Next. Grounded on
// original_source/crates/vt-push-parser/src/iter.rs's VTIterator, adapted
// from its Iterator<Item = AsRef<[u8]>>-driven shape to a Go push/pull split
// (Push feeds a chunk, Next drains one event at a time) since Go has no
// direct analogue of composing over an arbitrary upstream byte iterator.
//
// PERFORMANCE NOTE: like the Rust original, this allocates one OwnedEvent
// per emitted event; callers on a hot path should drive a Parser directly
// instead.
type OwnedEventIterator struct {
	parser *Parser
	queue  []OwnedEvent
}

// NewOwnedEventIterator returns an iterator wrapping a default-constructed
// Parser.
func NewOwnedEventIterator() *OwnedEventIterator {
	return &OwnedEventIterator{parser: NewParser()}
}

// NewOwnedEventIteratorWithOptions returns an iterator wrapping a Parser
// constructed with opts.
func NewOwnedEventIteratorWithOptions(opts ParserOptions) *OwnedEventIterator {
	return &OwnedEventIterator{parser: NewParserWithOptions(opts)}
}

// Push feeds chunk into the underlying Parser, cloning every resulting
// Event (via CloneEvent) onto the drain queue so it survives past chunk's
// lifetime.
func (it *OwnedEventIterator) Push(chunk []byte) {
	it.parser.FeedAll(chunk, func(ev Event) {
		it.queue = append(it.queue, CloneEvent(ev))
	})
}

// Next pops the oldest queued OwnedEvent. It reports false when the queue
// is empty — callers should Push more input and call Next again, or stop if
// no more input is coming.
func (it *OwnedEventIterator) Next() (OwnedEvent, bool) {
	if len(it.queue) == 0 {
		return nil, false
	}
	ev := it.queue[0]
	it.queue = it.queue[1:]
	return ev, true
}

// Len reports how many drained events are currently queued.
func (it *OwnedEventIterator) Len() int { return len(it.queue) }
