/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThomasDpr/chess-tournaments/swiss"
)

func TestPlayerStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	s := NewPlayerStore(path)

	players, err := s.Load()
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("missing file loaded %d players; want 0", len(players))
	}

	want := []swiss.Player{
		{
			FirstName:   "Thomas",
			LastName:    "Dupré",
			BirthDate:   time.Date(1999, 12, 26, 0, 0, 0, 0, time.UTC),
			NationalID:  "TD2612",
			CareerScore: 4.5,
		},
		{
			FirstName:  "Jean",
			LastName:   "Martin",
			BirthDate:  time.Date(1985, 2, 1, 0, 0, 0, 0, time.UTC),
			NationalID: "JM0102",
		},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d players; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("player %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestPlayerStoreWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	s := NewPlayerStore(path)
	player := swiss.Player{
		FirstName:  "Ann",
		LastName:   "Lee",
		BirthDate:  time.Date(1990, 3, 7, 0, 0, 0, 0, time.UTC),
		NationalID: "AL0703",
	}
	if err := s.Save([]swiss.Player{player}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("players.json is not a JSON array: %v", err)
	}
	rec := raw[0]
	if rec["birth_date"] != "07-03-1990" {
		t.Errorf("birth_date = %v; want 07-03-1990", rec["birth_date"])
	}
	for _, key := range []string{"first_name", "last_name", "national_id", "career_score"} {
		if _, ok := rec[key]; !ok {
			t.Errorf("players.json record missing %q", key)
		}
	}
}

func TestPlayerStoreFind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	s := NewPlayerStore(path)
	if err := s.Save([]swiss.Player{{FirstName: "Ann", LastName: "Lee",
		BirthDate: time.Date(1990, 3, 7, 0, 0, 0, 0, time.UTC), NationalID: "AL0703"}}); err != nil {
		t.Fatal(err)
	}

	p, err := s.Find("AL0703")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if p.FirstName != "Ann" {
		t.Errorf("found player %+v", p)
	}

	var unknownErr *swiss.UnknownPlayerError
	if _, err := s.Find("ZZ9999"); !errors.As(err, &unknownErr) {
		t.Fatalf("Find of unknown id = %v; want UnknownPlayerError", err)
	}
}

func TestPlayerStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	var loadErr *LoadError
	if _, err := NewPlayerStore(path).Load(); !errors.As(err, &loadErr) {
		t.Fatalf("Load of corrupt file = %v; want LoadError", err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError path = %s; want %s", loadErr.Path, path)
	}
}

func storedTournament(t *testing.T) *swiss.Tournament {
	t.Helper()
	tourney := swiss.NewTournament("Winter Open", "Paris", "club championship",
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), 2)
	for _, id := range []string{"AA0001", "BB0002", "CC0003"} {
		if err := tourney.AddPlayer(id, 0); err != nil {
			t.Fatal(err)
		}
	}
	round, err := tourney.OpenNextRound()
	if err != nil {
		t.Fatal(err)
	}
	m := swiss.NewMatch("AA0001", "BB0002")
	if err := m.SetResult(1, 0); err != nil {
		t.Fatal(err)
	}
	if err := round.AddMatch(m); err != nil {
		t.Fatal(err)
	}
	tourney.ApplyResult(m)
	round.Close()
	return tourney
}

func TestTournamentStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.json")
	s := NewTournamentStore(path)
	want := storedTournament(t)

	if err := s.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d tournaments; want 1", len(loaded))
	}
	got := loaded[0]

	if got.ID != want.ID || got.Name != want.Name || got.Location != want.Location {
		t.Errorf("identity fields differ: got %s/%s/%s", got.ID, got.Name, got.Location)
	}
	if !got.StartDate.Equal(want.StartDate) || !got.EndDate.Equal(want.EndDate) {
		t.Errorf("dates differ: %v-%v vs %v-%v", got.StartDate, got.EndDate, want.StartDate, want.EndDate)
	}
	if got.CurrentRound != 1 || got.RoundsCount != 2 {
		t.Errorf("progression = %d/%d; want 1/2", got.CurrentRound, got.RoundsCount)
	}
	if len(got.Rounds) != 1 || !got.Rounds[0].Closed() {
		t.Fatalf("rounds not restored: %+v", got.Rounds)
	}
	match := got.Rounds[0].Matches[0]
	if match.Player1ID != "AA0001" || match.Score1 != 1 || match.Score2 != 0 {
		t.Errorf("match not restored: %+v", match)
	}
	if !match.Played() {
		t.Error("restored match not marked played")
	}
	if len(got.Roster) != 3 || got.Roster[0].Score != 1 {
		t.Errorf("roster not restored: %+v", got.Roster)
	}
	if !got.Resumable() {
		t.Error("restored mid-flight tournament not resumable")
	}
}

func TestTournamentStoreUpsertsByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.json")
	s := NewTournamentStore(path)

	first := storedTournament(t)
	second := storedTournament(t)
	second.Name = "Spring Open"
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	// renaming must not fork a second aggregate
	first.Name = "Winter Open (rescheduled)"
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d tournaments; want 2", len(loaded))
	}
	if loaded[0].Name != "Winter Open (rescheduled)" {
		t.Errorf("rename not applied in place: %s", loaded[0].Name)
	}

	found, err := s.Find(second.ID)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if found.Name != "Spring Open" {
		t.Errorf("Find returned %s; want Spring Open", found.Name)
	}
	if _, err := s.Find("missing-id"); err == nil {
		t.Error("Find of unknown id succeeded")
	}
}

func TestTournamentStoreWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournaments.json")
	s := NewTournamentStore(path)
	if err := s.Save(storedTournament(t)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("tournaments.json is not a JSON array: %v", err)
	}
	rec := raw[0]
	if rec["start_date"] != "2024-07-01" {
		t.Errorf("start_date = %v; want 2024-07-01", rec["start_date"])
	}
	rounds := rec["rounds"].([]any)
	round := rounds[0].(map[string]any)
	matches := round["matches"].([]any)
	side := matches[0].(map[string]any)["player1"].(map[string]any)
	if side["id"] != "AA0001" || side["score_match"] != 1.0 {
		t.Errorf("match side = %v; want id AA0001 score_match 1", side)
	}
	players := rec["players"].([]any)
	entry := players[0].(map[string]any)
	if entry["national_id"] != "AA0001" || entry["career_score"] != 1.0 {
		t.Errorf("roster entry = %v", entry)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewPlayerStore(filepath.Join(dir, "players.json"))
	if err := s.Save(nil); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "players.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("data dir contents = %v; want only players.json", names)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datas", "players.json")
	if err := NewPlayerStore(path).Save(nil); err != nil {
		t.Fatalf("Save into missing directory returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("data file not created: %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	players := NewPlayerStore(filepath.Join(dir, "players.json"))
	tournaments := NewTournamentStore(filepath.Join(dir, "tournaments.json"))

	if err := players.Save([]swiss.Player{{FirstName: "Ann", LastName: "Lee",
		BirthDate: time.Date(1990, 3, 7, 0, 0, 0, 0, time.UTC), NationalID: "AL0703"}}); err != nil {
		t.Fatal(err)
	}
	if err := tournaments.Save(storedTournament(t)); err != nil {
		t.Fatal(err)
	}

	playerList, tournamentList, err := LoadAll(players, tournaments)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(playerList) != 1 || len(tournamentList) != 1 {
		t.Errorf("LoadAll = %d players, %d tournaments; want 1 and 1",
			len(playerList), len(tournamentList))
	}
}
