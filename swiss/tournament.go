/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// RosterEntry is a tournament-scoped copy of a player: national id plus the
// score accumulated inside this tournament. The global player store remains
// the source of truth for identity; the entry is a point-in-time snapshot.
type RosterEntry struct {
	NationalID string
	Score      float64
}

// Pairing is a proposed pair of roster players for the current round, prior
// to a match being created. Repeat is set when the no-repeat constraint had
// to be relaxed because no fresh opponent remained.
type Pairing struct {
	Player1 RosterEntry
	Player2 RosterEntry
	Repeat  bool
}

// Tournament aggregates the roster, the rounds played so far, and the
// progression counters of one Swiss event. CurrentRound is 0 before the
// first round opens and stays within [0, RoundsCount].
type Tournament struct {
	ID           string
	Name         string
	Location     string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	RoundsCount  int
	CurrentRound int
	Rounds       []*Round
	Roster       []RosterEntry
}

// NewTournament registers a tournament at round zero with an empty roster.
func NewTournament(name, location, description string, startDate, endDate time.Time, roundsCount int) *Tournament {
	return &Tournament{
		ID:          uuid.NewString(),
		Name:        name,
		Location:    location,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		RoundsCount: roundsCount,
	}
}

// MinimumPlayersRequired is rounds_count+1: with N rounds and no repeat
// opponents, every player needs at least N distinct opponents.
func (t *Tournament) MinimumPlayersRequired() int {
	return t.RoundsCount + 1
}

// IsValidPlayerCount reports whether the roster is large enough to start.
func (t *Tournament) IsValidPlayerCount() bool {
	return len(t.Roster) >= t.MinimumPlayersRequired()
}

// Started reports whether the first round has been opened.
func (t *Tournament) Started() bool {
	return t.CurrentRound > 0
}

// Complete reports whether the final round has been played and closed.
func (t *Tournament) Complete() bool {
	return t.RoundsCount > 0 &&
		t.CurrentRound == t.RoundsCount &&
		len(t.Rounds) == t.RoundsCount &&
		t.Rounds[t.RoundsCount-1].Closed()
}

// Resumable reports whether the tournament is mid-flight: started but with
// rounds still to play or an open final round.
func (t *Tournament) Resumable() bool {
	return t.Started() && !t.Complete()
}

// AddPlayer enrolls a player snapshot. Duplicate ids in the roster are
// refused; the carried score is the player's score at enrollment time.
func (t *Tournament) AddPlayer(nationalID string, score float64) error {
	for _, entry := range t.Roster {
		if entry.NationalID == nationalID {
			return &PlayerExistsError{NationalID: nationalID}
		}
	}
	t.Roster = append(t.Roster, RosterEntry{NationalID: nationalID, Score: score})
	return nil
}

// RemovePlayer withdraws a player from the roster. Allowed only before the
// tournament starts; once matches reference a player the history must keep
// them.
func (t *Tournament) RemovePlayer(nationalID string) error {
	if t.Started() {
		return fmt.Errorf("cannot remove players from started tournament %q", t.Name)
	}
	for i, entry := range t.Roster {
		if entry.NationalID == nationalID {
			t.Roster = append(t.Roster[:i], t.Roster[i+1:]...)
			return nil
		}
	}
	return &UnknownPlayerError{NationalID: nationalID}
}

// HasPlayedAgainst reports whether the two players already met in any round
// of this tournament, in either board order. Linear scan over the full
// match history; fine at club scale.
func (t *Tournament) HasPlayedAgainst(id1, id2 string) bool {
	for _, round := range t.Rounds {
		for _, match := range round.Matches {
			if match.Involves(id1, id2) {
				return true
			}
		}
	}
	return false
}

// Standings returns the roster ordered by tournament score descending. The
// sort is stable so tied players keep their prior relative order, which is
// the pair-by-standings heuristic the pairing walk relies on.
func (t *Tournament) Standings() []RosterEntry {
	ordered := append([]RosterEntry(nil), t.Roster...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})
	return ordered
}

// GeneratePairings produces the pairing list for the current round: walk the
// standings top-down, pairing each still-unpaired player with the nearest
// lower-ranked player they have not faced yet. When every remaining
// candidate is a prior opponent the nearest one is reused and the pairing is
// flagged Repeat so callers can surface the relaxation. With an odd roster
// the last unpaired player sits the round out.
func (t *Tournament) GeneratePairings() []Pairing {
	return t.pairStandings(t.Standings())
}

// pairStandings runs the pairing walk over an already-ordered slice. Callers
// resuming a half-played round pass the standings with the players who have a
// recorded match filtered out.
func (t *Tournament) pairStandings(ordered []RosterEntry) []Pairing {
	used := make(map[string]bool, len(ordered))
	pairings := make([]Pairing, 0, len(ordered)/2)

	for i, p1 := range ordered {
		if used[p1.NationalID] {
			continue
		}
		fresh, fallback := -1, -1
		for j := i + 1; j < len(ordered); j++ {
			p2 := ordered[j]
			if used[p2.NationalID] {
				continue
			}
			if fallback == -1 {
				fallback = j
			}
			if !t.HasPlayedAgainst(p1.NationalID, p2.NationalID) {
				fresh = j
				break
			}
		}
		opp, repeat := fresh, false
		if opp == -1 {
			if fallback == -1 {
				// odd roster: p1 sits out this round
				break
			}
			opp, repeat = fallback, true
		}
		used[p1.NationalID] = true
		used[ordered[opp].NationalID] = true
		pairings = append(pairings, Pairing{
			Player1: p1,
			Player2: ordered[opp],
			Repeat:  repeat,
		})
	}

	return pairings
}

// OpenNextRound advances the progression: increments CurrentRound and opens
// "Round N". Refused once the target round count is reached.
func (t *Tournament) OpenNextRound() (*Round, error) {
	if t.CurrentRound >= t.RoundsCount {
		return nil, ErrTournamentComplete
	}
	t.CurrentRound++
	round := NewRound(fmt.Sprintf("Round %d", t.CurrentRound))
	t.Rounds = append(t.Rounds, round)
	return round, nil
}

// ActiveRound returns the round currently being played, or nil when no
// round is open.
func (t *Tournament) ActiveRound() *Round {
	if len(t.Rounds) == 0 {
		return nil
	}
	last := t.Rounds[len(t.Rounds)-1]
	if last.Closed() {
		return nil
	}
	return last
}

// ApplyResult folds a played match into the roster snapshot scores. The
// caller is responsible for mirroring the same deltas into the global
// player store.
func (t *Tournament) ApplyResult(m Match) {
	for i := range t.Roster {
		switch t.Roster[i].NationalID {
		case m.Player1ID:
			t.Roster[i].Score += m.Score1
		case m.Player2ID:
			t.Roster[i].Score += m.Score2
		}
	}
}
