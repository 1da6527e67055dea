package runner

// Events is the set of notable things that happened during one tick.
type Events uint8

const (
	EventReward   Events = 1 << iota // gap contact, score +200
	EventCrash                       // first blocking collision
	EventResample                    // new gap lane chosen
	EventRestart                     // state reset at tick start
)

// Has reports whether e contains every bit of f.
func (e Events) Has(f Events) bool { return e&f == f && f != 0 }

// Each calls fn once per event bit set in e, lowest bit first.
func (e Events) Each(fn func(Events)) {
	for b := EventReward; b <= EventRestart; b <<= 1 {
		if e&b != 0 {
			fn(b)
		}
	}
}

func (e Events) String() string {
	switch e {
	case EventReward:
		return "reward"
	case EventCrash:
		return "crash"
	case EventResample:
		return "resample"
	case EventRestart:
		return "restart"
	case 0:
		return "none"
	}
	return "multiple"
}

// EventHandler receives a single event together with the state after the
// tick that produced it.
type EventHandler func(ev Events, s State)

// EventBus fans tick events out to subscribers.
type EventBus struct {
	handlers map[Events][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[Events][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(ev Events, fn EventHandler) {
	eb.handlers[ev] = append(eb.handlers[ev], fn)
}

// Emit dispatches every bit in ev to its subscribers.
func (eb *EventBus) Emit(ev Events, s State) {
	ev.Each(func(b Events) {
		for _, fn := range eb.handlers[b] {
			fn(b, s)
		}
	})
}
