/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package view

import (
	"fmt"
	"strings"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

func displayName(id string, players []swiss.Player) string {
	for _, p := range players {
		if p.NationalID == id {
			return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
		}
	}
	return id
}

// BuildPairingsOutput formats the proposed pairings for the upcoming round
// into aligned board lines.
func BuildPairingsOutput(roundName string, pairings []swiss.Pairing, players []swiss.Player) string {
	if len(pairings) == 0 {
		return "No pairings to show\n"
	}

	type row struct{ board, white, black, note string }
	var rows []row
	for i, p := range pairings {
		r := row{
			board: fmt.Sprintf("%v.", i+1),
			white: displayName(p.Player1.NationalID, players),
			black: displayName(p.Player2.NationalID, players),
		}
		if p.Repeat {
			r.note = "(rematch)"
		}
		rows = append(rows, r)
	}

	maxB, maxW := len("Board"), len("White")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.white); l > maxW {
			maxW = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s pairings:\n\n", roundName))
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", maxB, "Board", maxW, "White", "Black"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s", maxB, r.board, maxW, r.white, r.black))
		if r.note != "" {
			sb.WriteString(" " + r.note)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// BuildStandingsOutput formats the tournament standings into an aligned
// table. Players on the same score share a place, shown once.
func BuildStandingsOutput(t *swiss.Tournament, players []swiss.Player) string {
	standings := t.Standings()
	if len(standings) == 0 {
		return "No players registered\n"
	}

	type row struct{ place, player, score string }
	var rows []row
	priorScore := -1.0
	place := 0
	for idx, entry := range standings {
		var rank string
		if idx != 0 && entry.Score == priorScore {
			rank = ""
		} else {
			place = idx + 1
			rank = fmt.Sprintf("%v.", place)
			priorScore = entry.Score
		}
		rows = append(rows, row{
			place:  rank,
			player: displayName(entry.NationalID, players),
			score:  internal.ScoreToString(entry.Score),
		})
	}

	maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
	for _, r := range rows {
		if l := len(r.place); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings for %s after round %d:\n\n", t.Name, t.CurrentRound))
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxN, "Name", maxS, "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.place, maxN, r.player, maxS, r.score))
	}
	return sb.String()
}

// BuildPlayerListOutput formats the global player roster into an aligned
// table, in the order given.
func BuildPlayerListOutput(players []swiss.Player) string {
	if len(players) == 0 {
		return "No players registered\n"
	}

	type row struct{ name, id, birth, score string }
	var rows []row
	for _, p := range players {
		rows = append(rows, row{
			name:  fmt.Sprintf("%s %s", p.FirstName, p.LastName),
			id:    p.NationalID,
			birth: p.BirthDate.Format(internal.BirthDateFormat),
			score: internal.ScoreToString(p.CareerScore),
		})
	}

	maxN, maxI, maxB := len("Name"), len("ID"), len("Birth date")
	for _, r := range rows {
		if l := len(r.name); l > maxN {
			maxN = l
		}
		if l := len(r.id); l > maxI {
			maxI = l
		}
		if l := len(r.birth); l > maxB {
			maxB = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxN, "Name", maxI, "ID",
		maxB, "Birth date", "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxN, r.name, maxI, r.id,
			maxB, r.birth, r.score))
	}
	return sb.String()
}

// BuildTournamentListOutput formats the stored tournaments with their
// progression state.
func BuildTournamentListOutput(tournaments []*swiss.Tournament) string {
	if len(tournaments) == 0 {
		return "No tournaments on file\n"
	}

	type row struct{ name, location, dates, progress, state string }
	var rows []row
	for _, t := range tournaments {
		state := "not started"
		switch {
		case t.Complete():
			state = "complete"
		case t.Started():
			state = "in progress"
		}
		rows = append(rows, row{
			name:     t.Name,
			location: t.Location,
			dates: fmt.Sprintf("%s to %s",
				t.StartDate.Format(internal.DateFormat),
				t.EndDate.Format(internal.DateFormat)),
			progress: fmt.Sprintf("%d/%d", t.CurrentRound, t.RoundsCount),
			state:    state,
		})
	}

	maxN, maxL, maxD, maxP := len("Name"), len("Location"), len("Dates"), len("Rounds")
	for _, r := range rows {
		if l := len(r.name); l > maxN {
			maxN = l
		}
		if l := len(r.location); l > maxL {
			maxL = l
		}
		if l := len(r.dates); l > maxD {
			maxD = l
		}
		if l := len(r.progress); l > maxP {
			maxP = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s\n", maxN, "Name", maxL, "Location",
		maxD, "Dates", maxP, "Rounds", "State"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %s\n", maxN, r.name, maxL, r.location,
			maxD, r.dates, maxP, r.progress, r.state))
	}
	return sb.String()
}
