package daynight

// Subscriptions are closure based: each subscribe call returns a function
// that removes exactly the handler it registered. Unsubscribing twice is
// harmless.

type intEvent struct {
	nextID   int
	handlers []intHandler
}

type intHandler struct {
	id int
	fn func(int)
}

func (e *intEvent) subscribe(fn func(int)) func() {
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, intHandler{id: id, fn: fn})
	return func() {
		for i := range e.handlers {
			if e.handlers[i].id == id {
				e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

func (e *intEvent) emit(v int) {
	// Snapshot so a handler that unsubscribes during emit cannot shift
	// entries out from under the loop.
	for _, h := range append([]intHandler(nil), e.handlers...) {
		h.fn(v)
	}
}

type floatEvent struct {
	nextID   int
	handlers []floatHandler
}

type floatHandler struct {
	id int
	fn func(float64)
}

func (e *floatEvent) subscribe(fn func(float64)) func() {
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, floatHandler{id: id, fn: fn})
	return func() {
		for i := range e.handlers {
			if e.handlers[i].id == id {
				e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

func (e *floatEvent) emit(v float64) {
	for _, h := range append([]floatHandler(nil), e.handlers...) {
		h.fn(v)
	}
}
