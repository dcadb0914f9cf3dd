package notify

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	h := NewHub(logrus.New())

	var rounds, all []domain.Event
	unsubscribe := h.Subscribe(NotifierFunc(func(e domain.Event) { rounds = append(rounds, e) }), domain.EventRoundGenerated)
	h.Subscribe(NotifierFunc(func(e domain.Event) { all = append(all, e) }),
		domain.EventRoundGenerated, domain.EventTournamentCompleted)
	h.Subscribe(NotifierFunc(func(e domain.Event) { panic("boom") }), domain.EventTournamentCompleted)

	h.Notify(domain.Event{Type: domain.EventRoundGenerated, Round: 2})
	h.Notify(domain.Event{Type: domain.EventMatchAdvanced})
	h.Notify(domain.Event{Type: domain.EventTournamentCompleted})

	assert.Len(t, rounds, 1)
	assert.Len(t, all, 2)

	unsubscribe()
	h.Notify(domain.Event{Type: domain.EventRoundGenerated})
	assert.Len(t, rounds, 1)
	assert.Len(t, all, 3)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)

	NewLogNotifier(l).Notify(domain.Event{
		Type:         domain.EventMatchAdvanced,
		TournamentID: uuid.New(),
		Round:        2,
		Match:        domain.MatchKey{Round: 2, Number: 1},
		PlayerID:     uuid.New(),
	})
	out := buf.String()
	assert.Contains(t, out, "event=match_advanced")
	assert.Contains(t, out, "match=R2M1")
	assert.Contains(t, out, "from=events")
}
