/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

// Wire shapes for tournaments.json. Dates are YYYY-MM-DD, round timestamps
// are the fixed-width DD-MM-YYYY-HH-MM stamps the rounds produce.
type matchSideRecord struct {
	ID    string  `json:"id"`
	Score float64 `json:"score_match"`
}

type matchRecord struct {
	Player1 matchSideRecord `json:"player1"`
	Player2 matchSideRecord `json:"player2"`
}

type roundRecord struct {
	Name      string        `json:"name"`
	Matches   []matchRecord `json:"matches"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
}

type rosterRecord struct {
	NationalID string  `json:"national_id"`
	Score      float64 `json:"career_score"`
}

type tournamentRecord struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Description  string         `json:"description"`
	RoundsCount  int            `json:"rounds_count"`
	CurrentRound int            `json:"current_round"`
	Rounds       []roundRecord  `json:"rounds"`
	Players      []rosterRecord `json:"players"`
}

// TournamentStore reads and writes the tournaments file. Save upserts one
// aggregate by id and rewrites the whole file.
type TournamentStore struct {
	path string
}

func NewTournamentStore(path string) *TournamentStore {
	return &TournamentStore{path: path}
}

// Load returns every tournament on file, in file order.
func (s *TournamentStore) Load() ([]*swiss.Tournament, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []tournamentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	tournaments := make([]*swiss.Tournament, 0, len(records))
	for _, rec := range records {
		t, err := decodeTournament(rec)
		if err != nil {
			return nil, &LoadError{Path: s.path, Err: err}
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

// SaveAll rewrites the whole tournaments file.
func (s *TournamentStore) SaveAll(tournaments []*swiss.Tournament) error {
	records := make([]tournamentRecord, 0, len(tournaments))
	for _, t := range tournaments {
		records = append(records, encodeTournament(t))
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

// Save upserts a single tournament by id.
func (s *TournamentStore) Save(t *swiss.Tournament) error {
	tournaments, err := s.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range tournaments {
		if existing.ID == t.ID {
			tournaments[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		tournaments = append(tournaments, t)
	}
	return s.SaveAll(tournaments)
}

// Find returns the tournament with the given id.
func (s *TournamentStore) Find(id string) (*swiss.Tournament, error) {
	tournaments, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, t := range tournaments {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no tournament with id %s", id)
}

func encodeTournament(t *swiss.Tournament) tournamentRecord {
	rec := tournamentRecord{
		ID:           t.ID,
		Name:         t.Name,
		Location:     t.Location,
		StartDate:    t.StartDate.Format(internal.DateFormat),
		EndDate:      t.EndDate.Format(internal.DateFormat),
		Description:  t.Description,
		RoundsCount:  t.RoundsCount,
		CurrentRound: t.CurrentRound,
		Rounds:       make([]roundRecord, 0, len(t.Rounds)),
		Players:      make([]rosterRecord, 0, len(t.Roster)),
	}
	for _, round := range t.Rounds {
		rr := roundRecord{
			Name:      round.Name,
			Matches:   make([]matchRecord, 0, len(round.Matches)),
			StartTime: round.StartTime,
			EndTime:   round.EndTime,
		}
		for _, m := range round.Matches {
			rr.Matches = append(rr.Matches, matchRecord{
				Player1: matchSideRecord{ID: m.Player1ID, Score: m.Score1},
				Player2: matchSideRecord{ID: m.Player2ID, Score: m.Score2},
			})
		}
		rec.Rounds = append(rec.Rounds, rr)
	}
	for _, entry := range t.Roster {
		rec.Players = append(rec.Players, rosterRecord{
			NationalID: entry.NationalID,
			Score:      entry.Score,
		})
	}
	return rec
}

func decodeTournament(rec tournamentRecord) (*swiss.Tournament, error) {
	startDate, err := time.Parse(internal.DateFormat, rec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("tournament %q: bad start_date %q: %w", rec.Name, rec.StartDate, err)
	}
	endDate, err := time.Parse(internal.DateFormat, rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("tournament %q: bad end_date %q: %w", rec.Name, rec.EndDate, err)
	}

	t := &swiss.Tournament{
		ID:           rec.ID,
		Name:         rec.Name,
		Location:     rec.Location,
		Description:  rec.Description,
		StartDate:    startDate,
		EndDate:      endDate,
		RoundsCount:  rec.RoundsCount,
		CurrentRound: rec.CurrentRound,
	}
	for _, rr := range rec.Rounds {
		round := &swiss.Round{
			Name:      rr.Name,
			StartTime: rr.StartTime,
			EndTime:   rr.EndTime,
		}
		for _, mr := range rr.Matches {
			round.Matches = append(round.Matches, swiss.Match{
				Player1ID: mr.Player1.ID,
				Player2ID: mr.Player2.ID,
				Score1:    mr.Player1.Score,
				Score2:    mr.Player2.Score,
			})
		}
		t.Rounds = append(t.Rounds, round)
	}
	for _, pr := range rec.Players {
		t.Roster = append(t.Roster, swiss.RosterEntry{
			NationalID: pr.NationalID,
			Score:      pr.Score,
		})
	}
	return t, nil
}
