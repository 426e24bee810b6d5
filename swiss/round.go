/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "github.com/ThomasDpr/chess-tournaments/internal"

// Round is one cycle of pairings and their matches. Match order is insertion
// order; the timestamps are fixed-width local-time strings for display and
// audit only. An empty EndTime means the round is still open.
type Round struct {
	Name      string
	Matches   []Match
	StartTime string
	EndTime   string
}

// NewRound opens a round, stamping the start time.
func NewRound(name string) *Round {
	return &Round{Name: name, StartTime: internal.Timestamp()}
}

// Closed reports whether the round has been closed.
func (r *Round) Closed() bool {
	return r.EndTime != ""
}

// AddMatch appends a match. Rounds accept matches only while open.
func (r *Round) AddMatch(m Match) error {
	if r.Closed() {
		return ErrRoundClosed
	}
	r.Matches = append(r.Matches, m)
	return nil
}

// Close stamps the end time; the round is read-only afterwards. Closing a
// closed round is a no-op so resume paths can call it unconditionally.
func (r *Round) Close() {
	if r.Closed() {
		return
	}
	r.EndTime = internal.Timestamp()
}
