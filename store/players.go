/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"encoding/json"
	"os"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

// playerRecord is the players.json wire shape: one flat object per player,
// birth date rendered as DD-MM-YYYY.
type playerRecord struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	BirthDate   string  `json:"birth_date"`
	NationalID  string  `json:"national_id"`
	CareerScore float64 `json:"career_score"`
}

// PlayerStore reads and writes the global player roster file.
type PlayerStore struct {
	path string
}

func NewPlayerStore(path string) *PlayerStore {
	return &PlayerStore{path: path}
}

// Load returns every registered player. A missing or empty file is an empty
// roster, not an error.
func (s *PlayerStore) Load() ([]swiss.Player, error) {
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

	var records []playerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	players := make([]swiss.Player, 0, len(records))
	for _, rec := range records {
		birthDate, err := internal.ParseBirthDate(rec.BirthDate)
		if err != nil {
			return nil, &LoadError{Path: s.path, Err: err}
		}
		players = append(players, swiss.Player{
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			BirthDate:   birthDate,
			NationalID:  rec.NationalID,
			CareerScore: rec.CareerScore,
		})
	}
	return players, nil
}

// Save rewrites the whole roster file.
func (s *PlayerStore) Save(players []swiss.Player) error {
	records := make([]playerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, playerRecord{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			BirthDate:   p.BirthDate.Format(internal.BirthDateFormat),
			NationalID:  p.NationalID,
			CareerScore: p.CareerScore,
		})
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

// Find returns the player with the given national id.
func (s *PlayerStore) Find(nationalID string) (swiss.Player, error) {
	players, err := s.Load()
	if err != nil {
		return swiss.Player{}, err
	}
	for _, p := range players {
		if p.NationalID == nationalID {
			return p, nil
		}
	}
	return swiss.Player{}, &swiss.UnknownPlayerError{NationalID: nationalID}
}
