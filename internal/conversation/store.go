package conversation

import (
	"iter"
	"slices"
	"sync"

	"converso/internal/logging"
)

// Observer is notified after every append, with the record that was added.
type Observer func(Message)

type subscription struct {
	id int
	fn Observer
}

// Store is the ordered, append-only message list backing the screen.
// It has a single state: a list that only grows.
type Store struct {
	mu        sync.RWMutex
	messages  []Message
	observers []subscription
	nextSubID int
}

// NewStore creates a store holding the given seed records in order.
func NewStore(seed ...Message) *Store {
	logging.StoreDebug("store created with %d seed messages", len(seed))
	return &Store{messages: slices.Clone(seed)}
}

// Append adds a record to the end of the sequence and notifies observers.
// Observers run synchronously on the caller's goroutine, outside the lock,
// in the order they subscribed.
func (s *Store) Append(sender Sender, body string) Message {
	msg := NewMessage(sender, body)

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	n := len(s.messages)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	logging.Get(logging.CategoryStore).With("len", n).Debug("appended %s message (%d bytes)", sender, len(body))

	for _, sub := range observers {
		sub.fn(msg)
	}
	return msg
}

// All returns a copy of every message, oldest first.
func (s *Store) All() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

// Messages yields a snapshot of the store, oldest first.
// Each call takes a fresh snapshot, so the sequence can be ranged repeatedly.
func (s *Store) Messages() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, m := range s.All() {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers fn for append notifications.
// The returned function removes it; calling it more than once is harmless.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}
