package domain

import (
	"caiu-perdeu/errors"
	"time"

	"github.com/samber/lo"
)

// Roster is the fixed, ordered set of players captured at game start.
// Only elimination timestamps change after capture.
type Roster struct {
	players []*Player
}

// Capture builds the roster from a membership snapshot.
// Duplicated identities keep their first position.
func Capture(snapshot Snapshot) (*Roster, error) {
	unique := lo.UniqBy(snapshot, func(o Occupant) Identity { return o.ID })
	if len(unique) < 2 {
		return nil, errors.ErrEmptyRoster
	}
	return &Roster{players: lo.Map(unique, func(o Occupant, _ int) *Player {
		return NewPlayer(o)
	})}, nil
}

// Players returns a copy of every player in capture order.
func (r *Roster) Players() []Player {
	return lo.Map(r.players, func(p *Player, _ int) Player { return *p })
}

func (r *Roster) Len() int {
	return len(r.players)
}

// Alive returns the players without an elimination timestamp, in capture order.
func (r *Roster) Alive() []*Player {
	return lo.Filter(r.players, func(p *Player, _ int) bool { return p.IsAlive() })
}

// MarkLeft eliminates every alive player missing from the snapshot.
// The returned players follow roster order, never snapshot order.
// Already eliminated players are never reported twice.
func (r *Roster) MarkLeft(snapshot Snapshot, now time.Time) []Player {
	var left []Player
	for _, p := range r.Alive() {
		if snapshot.Contains(p.ID) {
			continue
		}
		p.EliminatedAt = lo.ToPtr(now)
		left = append(left, *p)
	}
	return left
}

// Crown stamps the last alive player with now and returns it.
// It returns false unless exactly one player is alive.
func (r *Roster) Crown(now time.Time) (Player, bool) {
	alive := r.Alive()
	if len(alive) != 1 {
		return Player{}, false
	}
	alive[0].EliminatedAt = lo.ToPtr(now)
	return *alive[0], true
}
