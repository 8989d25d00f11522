package textual

// Generator turns a fixed sequence of values into a channel that yields them
// in order and closes once every value has been sent. It is the streaming
// stack's stand-in for a slice literal wherever a pipeline stage expects a
// <-chan P rather than a []P.
func Generator[P any](items ...P) <-chan P {
	out := make(chan P)
	go func() {
		defer close(out) // close the channel
		for _, item := range items {
			out <- item // Send each item
		}
	}()
	return out
}

// TextGenerator is Generator specialized for TextCarrier: it builds one
// carrier per string via TextFrom, assigning each its position in items as
// its index via WithIndex. It exists so call sites that only have plain
// UTF8String literals, not carriers, don't have to spell out
// TextFrom(s).WithIndex(i) by hand before calling Generator.
func TextGenerator(items ...UTF8String) <-chan TextCarrier {
	carriers := make([]TextCarrier, len(items))
	for i, s := range items {
		carriers[i] = TextFrom(s).WithIndex(i)
	}
	return Generator(carriers...)
}
