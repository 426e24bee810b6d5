/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func sortPlayersByName(players []swiss.Player) []swiss.Player {
	sorted := append([]swiss.Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FirstName != sorted[j].FirstName {
			return sorted[i].FirstName < sorted[j].FirstName
		}
		return sorted[i].LastName < sorted[j].LastName
	})
	return sorted
}

// PlayersAlphabetical lists every registered player sorted by name.
func PlayersAlphabetical(players []swiss.Player) *Report {
	r := &Report{
		Category: CategoryPlayers,
		FileName: "players_list",
		Columns:  []string{"first_name", "last_name", "birth_date", "national_id", "career_score"},
	}
	for _, p := range sortPlayersByName(players) {
		r.Rows = append(r.Rows, []string{
			p.FirstName,
			p.LastName,
			p.BirthDate.Format(internal.BirthDateFormat),
			p.NationalID,
			formatScore(p.CareerScore),
		})
	}
	return r
}

// TournamentsList lists every tournament on file.
func TournamentsList(tournaments []*swiss.Tournament) *Report {
	r := &Report{
		Category: CategoryTournaments,
		FileName: "tournaments_list",
		Columns: []string{"name", "location", "start_date", "end_date",
			"rounds_count", "current_round", "players"},
	}
	for _, t := range tournaments {
		r.Rows = append(r.Rows, []string{
			t.Name,
			t.Location,
			t.StartDate.Format(internal.DateFormat),
			t.EndDate.Format(internal.DateFormat),
			strconv.Itoa(t.RoundsCount),
			strconv.Itoa(t.CurrentRound),
			strconv.Itoa(len(t.Roster)),
		})
	}
	return r
}

// TournamentDetails is the single-tournament card: one row with every
// scalar field.
func TournamentDetails(t *swiss.Tournament) *Report {
	return &Report{
		Category: CategoryTournaments,
		FileName: "tournament_details_" + internal.SanitizeFileName(t.Name),
		Columns: []string{"name", "location", "start_date", "end_date",
			"description", "rounds_count", "current_round", "players"},
		Rows: [][]string{{
			t.Name,
			t.Location,
			t.StartDate.Format(internal.DateFormat),
			t.EndDate.Format(internal.DateFormat),
			t.Description,
			strconv.Itoa(t.RoundsCount),
			strconv.Itoa(t.CurrentRound),
			strconv.Itoa(len(t.Roster)),
		}},
	}
}

// TournamentRoster lists the tournament's players sorted by name, carrying
// the tournament-scoped score. Identity fields come from the global player
// list; roster entries whose id is not on file fall back to the id alone.
func TournamentRoster(t *swiss.Tournament, players []swiss.Player) *Report {
	byID := make(map[string]swiss.Player, len(players))
	for _, p := range players {
		byID[p.NationalID] = p
	}

	resolved := make([]swiss.Player, 0, len(t.Roster))
	for _, entry := range t.Roster {
		p, ok := byID[entry.NationalID]
		if !ok {
			p = swiss.Player{NationalID: entry.NationalID}
		}
		p.CareerScore = entry.Score
		resolved = append(resolved, p)
	}

	r := &Report{
		Category: CategoryTournaments,
		FileName: fmt.Sprintf("tournament_%s_players_list", internal.SanitizeFileName(t.Name)),
		Columns:  []string{"first_name", "last_name", "national_id", "tournament_score"},
	}
	for _, p := range sortPlayersByName(resolved) {
		r.Rows = append(r.Rows, []string{
			p.FirstName,
			p.LastName,
			p.NationalID,
			formatScore(p.CareerScore),
		})
	}
	return r
}

// RoundsAndMatches flattens the tournament's match history, one row per
// match in play order.
func RoundsAndMatches(t *swiss.Tournament) *Report {
	r := &Report{
		Category: CategoryTournaments,
		FileName: fmt.Sprintf("tournament_%s_rounds_and_matches", internal.SanitizeFileName(t.Name)),
		Columns:  []string{"round", "player1_id", "player2_id", "score_player1", "score_player2"},
	}
	for _, round := range t.Rounds {
		for _, m := range round.Matches {
			r.Rows = append(r.Rows, []string{
				round.Name,
				m.Player1ID,
				m.Player2ID,
				formatScore(m.Score1),
				formatScore(m.Score2),
			})
		}
	}
	return r
}
