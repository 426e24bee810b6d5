/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ThomasDpr/chess-tournaments/swiss"
)

func TestCollectResultChoices(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  swiss.Outcome
	}{
		{name: "player1 wins", input: "1\n", want: swiss.OutcomePlayer1Wins},
		{name: "player2 wins", input: "2\n", want: swiss.OutcomePlayer2Wins},
		{name: "draw", input: "3\n", want: swiss.OutcomeDraw},
		{name: "save and pause", input: "4\n", want: swiss.OutcomeCancelled},
		{name: "retries bad input", input: "x\n9\n3\n", want: swiss.OutcomeDraw},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			v := New(strings.NewReader(c.input), &out)
			got, err := v.CollectResult("Round 1", 1,
				swiss.PlayerCard{Name: "Alice Bernard", NationalID: "AB0002", Score: 1.5},
				swiss.PlayerCard{Name: "Jean Martin", NationalID: "JM0003", Score: 1})
			if err != nil {
				t.Fatalf("CollectResult returned error: %v", err)
			}
			if got != c.want {
				t.Errorf("outcome = %v; want %v", got, c.want)
			}
			if !strings.Contains(out.String(), "Alice Bernard") {
				t.Error("prompt does not show the first player's name")
			}
			if !strings.Contains(out.String(), "1½") {
				t.Error("prompt does not show the half-point score glyph")
			}
		})
	}
}

func TestPromptIntBounds(t *testing.T) {
	var out bytes.Buffer
	v := New(strings.NewReader("0\n7\nabc\n3\n"), &out)
	n, err := v.PromptInt("Rounds", 1, 6)
	if err != nil {
		t.Fatalf("PromptInt returned error: %v", err)
	}
	if n != 3 {
		t.Errorf("PromptInt = %d; want 3", n)
	}
	if got := strings.Count(out.String(), "between 1 and 6"); got != 3 {
		t.Errorf("rejection message shown %d times; want 3", got)
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
	}
	for _, c := range cases {
		v := New(strings.NewReader(c.input), &bytes.Buffer{})
		got, err := v.Confirm("Delete this player?")
		if err != nil {
			t.Fatalf("Confirm returned error: %v", err)
		}
		if got != c.want {
			t.Errorf("Confirm(%q) = %v; want %v", strings.TrimSpace(c.input), got, c.want)
		}
	}
}

func TestSelectReturnsIndex(t *testing.T) {
	var out bytes.Buffer
	v := New(strings.NewReader("2\n"), &out)
	idx, err := v.Select("Tournament", []string{"Winter Open", "Spring Open"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if idx != 1 {
		t.Errorf("Select = %d; want 1", idx)
	}
	if !strings.Contains(out.String(), "1) Winter Open") {
		t.Errorf("menu output: %q", out.String())
	}
}

func viewPlayers() []swiss.Player {
	return []swiss.Player{
		{FirstName: "Alice", LastName: "Bernard", NationalID: "AB0002",
			BirthDate: time.Date(1990, 3, 7, 0, 0, 0, 0, time.UTC), CareerScore: 2.5},
		{FirstName: "Jean", LastName: "Martin", NationalID: "JM0003",
			BirthDate: time.Date(1985, 2, 1, 0, 0, 0, 0, time.UTC), CareerScore: 1},
	}
}

func TestBuildStandingsOutputSharesTiedPlaces(t *testing.T) {
	tourney := swiss.NewTournament("Winter Open", "Paris", "", time.Time{}, time.Time{}, 2)
	tourney.Roster = []swiss.RosterEntry{
		{NationalID: "AB0002", Score: 1.5},
		{NationalID: "JM0003", Score: 1.5},
		{NationalID: "ZZ9999", Score: 0},
	}

	out := BuildStandingsOutput(tourney, viewPlayers())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header block is two lines, then the column header
	body := lines[3:]
	if len(body) != 3 {
		t.Fatalf("standings body has %d lines: %q", len(body), out)
	}
	if !strings.HasPrefix(body[0], "1.") {
		t.Errorf("first place line = %q", body[0])
	}
	if strings.HasPrefix(body[1], "2.") {
		t.Errorf("tied player got a fresh place: %q", body[1])
	}
	if !strings.HasPrefix(body[2], "3.") {
		t.Errorf("player after a tie should rank 3rd: %q", body[2])
	}
	if !strings.Contains(body[0], "1½") {
		t.Errorf("score not rendered with half glyph: %q", body[0])
	}
	// unknown ids fall back to the raw id
	if !strings.Contains(body[2], "ZZ9999") {
		t.Errorf("unknown player line = %q", body[2])
	}
}

func TestBuildPairingsOutputMarksRematches(t *testing.T) {
	pairings := []swiss.Pairing{
		{Player1: swiss.RosterEntry{NationalID: "AB0002"},
			Player2: swiss.RosterEntry{NationalID: "JM0003"}},
		{Player1: swiss.RosterEntry{NationalID: "XX0001"},
			Player2: swiss.RosterEntry{NationalID: "YY0002"}, Repeat: true},
	}
	out := BuildPairingsOutput("Round 2", pairings, viewPlayers())
	if !strings.Contains(out, "Alice Bernard") {
		t.Error("pairing names not resolved")
	}
	lines := strings.Split(out, "\n")
	var rematchLine string
	for _, line := range lines {
		if strings.Contains(line, "XX0001") {
			rematchLine = line
		}
	}
	if !strings.HasSuffix(rematchLine, "(rematch)") {
		t.Errorf("repeat pairing line = %q; want (rematch) marker", rematchLine)
	}
}

func TestBuildPlayerListOutput(t *testing.T) {
	out := BuildPlayerListOutput(viewPlayers())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("player list has %d lines; want header + 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "07-03-1990") {
		t.Errorf("birth date missing: %q", lines[1])
	}
	if BuildPlayerListOutput(nil) != "No players registered\n" {
		t.Error("empty roster message wrong")
	}
}

func TestBuildTournamentListOutputStates(t *testing.T) {
	fresh := swiss.NewTournament("Fresh", "Lille", "",
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 2)

	running := swiss.NewTournament("Running", "Paris", "",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), 2)
	if _, err := running.OpenNextRound(); err != nil {
		t.Fatal(err)
	}

	out := BuildTournamentListOutput([]*swiss.Tournament{fresh, running})
	if !strings.Contains(out, "not started") || !strings.Contains(out, "in progress") {
		t.Errorf("tournament states missing from output:\n%s", out)
	}
	if !strings.Contains(out, "0/2") || !strings.Contains(out, "1/2") {
		t.Errorf("round progression missing from output:\n%s", out)
	}
}
