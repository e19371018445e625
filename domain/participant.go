// Package domain contains core concepts of the elimination game.
// This file defines Player entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// Identity is the opaque, stable handle of a participant.
type Identity string

// Occupant is one entry of an occupancy snapshot.
type Occupant struct {
	ID          Identity
	DisplayName string
}

// Snapshot is a point-in-time read of who is in a voice channel, in source order.
type Snapshot []Occupant

// Contains reports whether the identity is present in the snapshot.
func (s Snapshot) Contains(id Identity) bool {
	for _, o := range s {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Distinct returns the number of distinct identities in the snapshot.
func (s Snapshot) Distinct() int {
	seen := make(map[Identity]struct{}, len(s))
	for _, o := range s {
		seen[o.ID] = struct{}{}
	}
	return len(seen)
}

// Player is a participant captured in the roster.
// DisplayName is frozen at capture time.
// EliminatedAt is nil while the player is alive and is set exactly once.
type Player struct {
	ID           Identity
	DisplayName  string
	EliminatedAt *time.Time
}

func NewPlayer(o Occupant) *Player {
	return &Player{ID: o.ID, DisplayName: o.DisplayName}
}

// Equal compares players by identity only.
func (p Player) Equal(other Player) bool {
	return p.ID == other.ID
}

func (p Player) IsAlive() bool {
	return p.EliminatedAt == nil
}

// Survived returns how long the player lasted since start.
// For an alive player it is measured against now.
func (p Player) Survived(start, now time.Time) time.Duration {
	if p.EliminatedAt == nil {
		return now.Sub(start)
	}
	return p.EliminatedAt.Sub(start)
}
