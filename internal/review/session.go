// Package review holds the in-memory state of a card review session: the
// filtered list being studied, the cursor position, and the shuffle order.
// Nothing here is persisted; the only side effect is the visit notification
// fired when a card comes on screen.
package review

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/cardboxapp/cardbox/internal/model"
)

// VisitFunc records that a card was displayed. It runs fire-and-forget:
// errors are logged and never block navigation.
type VisitFunc func(id int64) error

type Session struct {
	cards    []*model.Flashcard
	index    int
	shuffled bool
	rng      *rand.Rand
	visit    VisitFunc
}

func NewSession(visit VisitFunc) *Session {
	return NewSessionWithRand(visit, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSessionWithRand takes an explicit random source so shuffles can be made
// deterministic in tests.
func NewSessionWithRand(visit VisitFunc, rng *rand.Rand) *Session {
	return &Session{
		rng:   rng,
		visit: visit,
	}
}

// Load replaces the session's list, typically after a filter change. The
// cursor resets to the first card and any shuffle order is discarded.
func (s *Session) Load(cards []*model.Flashcard) {
	s.cards = make([]*model.Flashcard, len(cards))
	copy(s.cards, cards)
	s.index = 0
	s.shuffled = false
	s.notifyVisit()
}

// Current returns the card under the cursor, or nil when the list is empty.
func (s *Session) Current() *model.Flashcard {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[s.index]
}

func (s *Session) Len() int {
	return len(s.cards)
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Shuffled() bool {
	return s.shuffled
}

// Shuffle applies a uniform random permutation (Fisher–Yates) to the
// in-memory list only; persisted order is untouched. The cursor resets to
// the first card of the new order.
func (s *Session) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.index = 0
	s.shuffled = true
	s.notifyVisit()
}

// Next advances the cursor. No wraparound: on the last card it stays put.
func (s *Session) Next() {
	if s.index < len(s.cards)-1 {
		s.index++
		s.notifyVisit()
	}
}

// Prev moves the cursor back. No wraparound: on the first card it stays put.
func (s *Session) Prev() {
	if s.index > 0 {
		s.index--
		s.notifyVisit()
	}
}

// Remove drops a card from the in-memory list, e.g. after it was deleted.
// The cursor keeps its position and clamps to the last valid index when it
// would fall off the end; if a different card ends up on display, that
// counts as a visit.
func (s *Session) Remove(id int64) {
	removed := -1
	for i, card := range s.cards {
		if card.ID == id {
			removed = i
			break
		}
	}
	if removed == -1 {
		return
	}

	before := s.Current()

	s.cards = append(s.cards[:removed], s.cards[removed+1:]...)

	if len(s.cards) == 0 {
		s.index = 0
		return
	}
	if s.index > len(s.cards)-1 {
		s.index = len(s.cards) - 1
	}

	if before == nil || s.cards[s.index].ID != before.ID {
		s.notifyVisit()
	}
}

// notifyVisit fires the visit callback for the card now on display.
func (s *Session) notifyVisit() {
	card := s.Current()
	if card == nil || s.visit == nil {
		return
	}

	id := card.ID
	go func() {
		err := s.visit(id)
		if err != nil {
			slog.Warn("visit update failed", "flashcard_id", id, "error", err)
		}
	}()
}
