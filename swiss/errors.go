/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"fmt"
)

var (
	// ErrRoundClosed is returned when a match is recorded on a round whose
	// end stamp is already set.
	ErrRoundClosed = errors.New("round is closed")

	// ErrResultAlreadySet is returned on a second SetResult call for the
	// same match.
	ErrResultAlreadySet = errors.New("match result already recorded")

	// ErrTournamentComplete is returned when a completed tournament is
	// asked to advance.
	ErrTournamentComplete = errors.New("tournament is complete")
)

// PlayerExistsError reports a duplicate national id in the roster context.
type PlayerExistsError struct {
	NationalID string
}

func (e *PlayerExistsError) Error() string {
	return fmt.Sprintf("a player with national id %s already exists", e.NationalID)
}

// InvalidNationalIDError reports a national id that does not normalize to
// the AB1234 format.
type InvalidNationalIDError struct {
	NationalID string
}

func (e *InvalidNationalIDError) Error() string {
	return fmt.Sprintf("invalid national id %q: expected format 'AB1234'", e.NationalID)
}

// InvalidDateFormatError reports a birth date that could not be parsed.
type InvalidDateFormatError struct {
	Input string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: use 'DD-MM-YYYY', 'DD/MM/YYYY' or 'DDMMYYYY'", e.Input)
}

// InvalidScoreError reports a score pair outside {(1,0),(0,1),(0.5,0.5)}.
type InvalidScoreError struct {
	Score1, Score2 float64
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("invalid match result %v-%v: expected 1-0, 0-1 or 0.5-0.5",
		e.Score1, e.Score2)
}

// InsufficientPlayersError refuses a tournament start when the roster is
// smaller than rounds_count+1.
type InsufficientPlayersError struct {
	Tournament string
	Registered int
	Rounds     int
	Minimum    int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("tournament %q needs at least %d players for %d rounds, got %d",
		e.Tournament, e.Minimum, e.Rounds, e.Registered)
}

// UnknownPlayerError reports a roster or store lookup miss.
type UnknownPlayerError struct {
	NationalID string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("no player with national id %s", e.NationalID)
}
