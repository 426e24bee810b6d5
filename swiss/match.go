/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Match records the result of one game between two player ids. Scores stay
// at the 0-0 unplayed sentinel until SetResult is called, exactly once.
type Match struct {
	Player1ID string
	Player2ID string
	Score1    float64
	Score2    float64
}

// NewMatch creates an unplayed match between the two given players.
func NewMatch(player1ID, player2ID string) Match {
	return Match{Player1ID: player1ID, Player2ID: player2ID}
}

// Played reports whether a result has been recorded. The 0-0 pair is the
// unplayed sentinel; every legal result sums to 1.
func (m Match) Played() bool {
	return m.Score1+m.Score2 != 0
}

// SetResult records the final score pair. Only 1-0, 0-1 and 0.5-0.5 are
// accepted, and only once per match.
func (m *Match) SetResult(score1, score2 float64) error {
	if m.Played() {
		return ErrResultAlreadySet
	}
	valid := (score1 == 1 && score2 == 0) ||
		(score1 == 0 && score2 == 1) ||
		(score1 == 0.5 && score2 == 0.5)
	if !valid {
		return &InvalidScoreError{Score1: score1, Score2: score2}
	}
	m.Score1 = score1
	m.Score2 = score2
	return nil
}

// Involves reports whether the match was contested between the two given
// players, in either board order.
func (m Match) Involves(id1, id2 string) bool {
	return (m.Player1ID == id1 && m.Player2ID == id2) ||
		(m.Player1ID == id2 && m.Player2ID == id1)
}
