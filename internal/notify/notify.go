package notify

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	"github.com/sirupsen/logrus"
)

// Notifier receives tournament events. Delivery is fire-and-forget: a
// notifier must not block or fail the operation that produced the event.
type Notifier interface {
	Notify(event domain.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(event domain.Event)

func (f NotifierFunc) Notify(event domain.Event) {
	f(event)
}

// Hub fans events out to the subscribers of their type.
type Hub struct {
	mu          sync.RWMutex
	nextID      int
	handlers    map[int]Notifier
	subscribers map[domain.EventType]mapset.Set[int]
	log         *logrus.Entry
}

func NewHub(l *logrus.Logger) *Hub {
	return &Hub{
		handlers:    make(map[int]Notifier),
		subscribers: make(map[domain.EventType]mapset.Set[int]),
		log:         l.WithFields(map[string]interface{}{"from": "notify"}),
	}
}

// Subscribe registers n for the given event types and returns a function
// removing the subscription.
func (h *Hub) Subscribe(n Notifier, types ...domain.EventType) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.handlers[id] = n
	for _, t := range types {
		subs, ok := h.subscribers[t]
		if !ok {
			subs = mapset.NewThreadUnsafeSet[int]()
			h.subscribers[t] = subs
		}
		subs.Add(id)
	}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers, id)
		for _, subs := range h.subscribers {
			subs.Remove(id)
		}
	}
}

func (h *Hub) Notify(event domain.Event) {
	h.mu.RLock()
	var targets []Notifier
	if subs, ok := h.subscribers[event.Type]; ok {
		subs.Each(func(id int) bool {
			targets = append(targets, h.handlers[id])
			return false
		})
	}
	h.mu.RUnlock()

	for _, n := range targets {
		h.deliver(n, event)
	}
}

func (h *Hub) deliver(n Notifier, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			h.log.WithField("event", event.Type).Errorf("notifier panicked: %v", r)
		}
	}()
	n.Notify(event)
}

// LogNotifier writes every event to the log.
type LogNotifier struct {
	log *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{
		log: l.WithFields(map[string]interface{}{"from": "events"}),
	}
}

func (n *LogNotifier) Notify(event domain.Event) {
	fields := logrus.Fields{
		"event":      event.Type,
		"tournament": event.TournamentID,
	}
	if event.Round > 0 {
		fields["round"] = event.Round
	}
	if event.Match.Round > 0 {
		fields["match"] = event.Match.String()
	}
	if event.PlayerID != uuid.Nil {
		fields["player"] = event.PlayerID
	}
	if event.Rank != "" {
		fields["rank"] = event.Rank
	}
	n.log.WithFields(fields).Info("tournament event")
}

// Nop discards events.
type Nop struct{}

func (Nop) Notify(domain.Event) {}
