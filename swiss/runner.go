/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"log"
)

// Outcome is the explicit result variant returned by the result collector.
// Cancellation is an ordinary value, not an error: the operator pausing a
// tournament leaves every aggregate valid and resumable.
type Outcome int

const (
	OutcomePlayer1Wins Outcome = iota
	OutcomePlayer2Wins
	OutcomeDraw
	OutcomeCancelled
)

// RunStatus reports how a Run invocation ended.
type RunStatus int

const (
	// RunPaused means the operator cancelled mid-round; state was
	// persisted and the tournament can be resumed later.
	RunPaused RunStatus = iota
	// RunCompleted means the final round was played and closed.
	RunCompleted
)

// PlayerCard carries the display fields the result collector needs for one
// side of a board.
type PlayerCard struct {
	Name       string
	NationalID string
	Score      float64
}

// ResultCollector obtains the outcome of a single board from the operator.
type ResultCollector interface {
	CollectResult(roundName string, board int, player1, player2 PlayerCard) (Outcome, error)
}

// PlayerStore is the global player roster collaborator.
type PlayerStore interface {
	Load() ([]Player, error)
	Save(players []Player) error
}

// TournamentStore persists whole tournament aggregates; Save upserts by id.
type TournamentStore interface {
	Save(t *Tournament) error
}

// Runner drives one tournament from its current state toward completion,
// one match at a time: pair, collect a result, record the match, fold the
// score deltas into both the global store and the roster snapshot, persist.
// Persistence failures abort the run since an unpersisted state would break
// resumability.
type Runner struct {
	Tournament  *Tournament
	Players     PlayerStore
	Tournaments TournamentStore
	Collector   ResultCollector

	// Warnf receives non-fatal pairing diagnostics (repeat pairings).
	// Defaults to log.Printf.
	Warnf func(format string, args ...any)
}

func (r *Runner) warnf(format string, args ...any) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Run advances the tournament until it completes or the operator cancels.
// Starting an unstarted tournament is refused with InsufficientPlayersError
// when the roster is smaller than rounds_count+1.
func (r *Runner) Run() (RunStatus, error) {
	t := r.Tournament

	if t.Complete() {
		return RunCompleted, ErrTournamentComplete
	}
	if !t.Started() {
		if !t.IsValidPlayerCount() {
			return RunPaused, &InsufficientPlayersError{
				Tournament: t.Name,
				Registered: len(t.Roster),
				Rounds:     t.RoundsCount,
				Minimum:    t.MinimumPlayersRequired(),
			}
		}
		if _, err := t.OpenNextRound(); err != nil {
			return RunPaused, err
		}
		if err := r.persistTournament(); err != nil {
			return RunPaused, err
		}
	}

	players, err := r.Players.Load()
	if err != nil {
		return RunPaused, fmt.Errorf("unable to load players: %w", err)
	}
	byID := make(map[string]int, len(players))
	for i, p := range players {
		byID[p.NationalID] = i
	}

	for {
		round := t.ActiveRound()
		if round == nil {
			// Prior round closed below, or closed before a resume.
			if t.CurrentRound >= t.RoundsCount {
				return RunCompleted, nil
			}
			if _, err := t.OpenNextRound(); err != nil {
				return RunPaused, err
			}
			if err := r.persistTournament(); err != nil {
				return RunPaused, err
			}
			round = t.ActiveRound()
		}

		status, err := r.playRound(round, players, byID)
		if err != nil || status == RunPaused {
			return status, err
		}

		round.Close()
		if err := r.persistTournament(); err != nil {
			return RunPaused, err
		}
		if t.CurrentRound == t.RoundsCount {
			return RunCompleted, nil
		}
	}
}

// playRound collects results for every pairing of the open round that is not
// already recorded. On resume, players who already appear in a recorded match
// of this round are left out of the pairing walk so nobody plays twice in one
// round.
func (r *Runner) playRound(round *Round, players []Player, byID map[string]int) (RunStatus, error) {
	t := r.Tournament

	alreadyPlayed := make(map[string]bool)
	for _, m := range round.Matches {
		alreadyPlayed[m.Player1ID] = true
		alreadyPlayed[m.Player2ID] = true
	}
	remaining := make([]RosterEntry, 0, len(t.Roster))
	for _, entry := range t.Standings() {
		if !alreadyPlayed[entry.NationalID] {
			remaining = append(remaining, entry)
		}
	}
	pairings := t.pairStandings(remaining)

	board := len(round.Matches)
	for _, pairing := range pairings {
		board++

		if pairing.Repeat {
			r.warnf("%s: no fresh opponent left for %s; repeat pairing against %s",
				round.Name, pairing.Player1.NationalID, pairing.Player2.NationalID)
		}

		outcome, err := r.Collector.CollectResult(round.Name, board,
			r.cardFor(pairing.Player1, players, byID),
			r.cardFor(pairing.Player2, players, byID))
		if err != nil {
			return RunPaused, fmt.Errorf("unable to collect result: %w", err)
		}
		if outcome == OutcomeCancelled {
			if err := r.persistTournament(); err != nil {
				return RunPaused, err
			}
			return RunPaused, nil
		}

		match := NewMatch(pairing.Player1.NationalID, pairing.Player2.NationalID)
		score1, score2 := outcome.scores()
		if err := match.SetResult(score1, score2); err != nil {
			return RunPaused, err
		}
		if err := round.AddMatch(match); err != nil {
			return RunPaused, err
		}

		t.ApplyResult(match)
		applyToPlayers(match, players, byID)
		if err := r.Players.Save(players); err != nil {
			return RunPaused, fmt.Errorf("unable to save players: %w", err)
		}
		if err := r.persistTournament(); err != nil {
			return RunPaused, err
		}
	}

	return RunCompleted, nil
}

func (r *Runner) persistTournament() error {
	if err := r.Tournaments.Save(r.Tournament); err != nil {
		return fmt.Errorf("unable to save tournament %q: %w", r.Tournament.Name, err)
	}
	return nil
}

func (r *Runner) cardFor(entry RosterEntry, players []Player, byID map[string]int) PlayerCard {
	card := PlayerCard{
		Name:       entry.NationalID,
		NationalID: entry.NationalID,
		Score:      entry.Score,
	}
	if i, ok := byID[entry.NationalID]; ok {
		card.Name = fmt.Sprintf("%s %s", players[i].FirstName, players[i].LastName)
	}
	return card
}

func applyToPlayers(m Match, players []Player, byID map[string]int) {
	if i, ok := byID[m.Player1ID]; ok {
		players[i].CareerScore += m.Score1
	}
	if i, ok := byID[m.Player2ID]; ok {
		players[i].CareerScore += m.Score2
	}
}

func (o Outcome) scores() (float64, float64) {
	switch o {
	case OutcomePlayer1Wins:
		return 1, 0
	case OutcomePlayer2Wins:
		return 0, 1
	case OutcomeDraw:
		return 0.5, 0.5
	}
	return 0, 0
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1Wins:
		return "1-0"
	case OutcomePlayer2Wins:
		return "0-1"
	case OutcomeDraw:
		return "½-½"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "?"
}
