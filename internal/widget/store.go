package widget

// Store is the single source of truth for one widget instance's State.
// Implementations must deliver notifications synchronously, in subscription
// order, exactly once per SetState call, and must tolerate re-entrant
// SetState calls from inside a subscriber callback.
type Store interface {
	State() State
	SetState(patch Patch)
	Subscribe(fn func(State)) (unsubscribe func())
}

// Patch describes a shallow merge over the four State fields. Nil fields are
// left untouched; Options replaces the whole list when set.
type Patch struct {
	Open         *bool
	FocusedIndex *int
	Value        *string
	Options      *[]Option
}

// OpenPatch sets only the Open field.
func OpenPatch(open bool) Patch { return Patch{Open: &open} }

// FocusPatch sets only the FocusedIndex field.
func FocusPatch(index int) Patch { return Patch{FocusedIndex: &index} }

// ValuePatch sets only the Value field.
func ValuePatch(value string) Patch { return Patch{Value: &value} }

// OptionsPatch replaces the Options list.
func OptionsPatch(options []Option) Patch {
	dup := CloneOptions(options)
	return Patch{Options: &dup}
}

type subscriber struct {
	id int
	fn func(State)
}

// memoryStore is the reference Store. It assumes a single logical thread of
// control (UI event dispatch is serialized), so access is not locked.
type memoryStore struct {
	state  State
	subs   []subscriber
	nextID int
}

// NewStore constructs an in-memory Store seeded with the initial state.
func NewStore(initial State) Store {
	return &memoryStore{state: initial}
}

func (s *memoryStore) State() State {
	return s.state
}

func (s *memoryStore) SetState(patch Patch) {
	if patch.Open != nil {
		s.state.Open = *patch.Open
	}
	if patch.FocusedIndex != nil {
		s.state.FocusedIndex = *patch.FocusedIndex
	}
	if patch.Value != nil {
		s.state.Value = *patch.Value
	}
	if patch.Options != nil {
		s.state.Options = *patch.Options
	}
	// Snapshot the subscriber list so unsubscribing (or subscribing) from
	// inside a callback does not disturb the round already in flight. The
	// state itself is read live per callback: a re-entrant SetState must not
	// leave later subscribers with a stale snapshot.
	round := make([]subscriber, len(s.subs))
	copy(round, s.subs)
	for _, sub := range round {
		sub.fn(s.state)
	}
}

func (s *memoryStore) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
