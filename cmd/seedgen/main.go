/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// seedgen fills the data directory with fictional players and a couple of
// empty tournaments, handy for trying the tool out without typing a roster
// in by hand.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/store"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

var firstNames = []string{
	"Alice", "Antoine", "Camille", "Chloé", "Émile", "Hugo", "Inès", "Jean",
	"Julia", "Léa", "Louis", "Lucas", "Manon", "Marie", "Nathan", "Nina",
	"Paul", "Sofia", "Thomas", "Victor",
}

var lastNames = []string{
	"Bernard", "Dubois", "Dupré", "Durand", "Fontaine", "Garcia", "Laurent",
	"Lefebvre", "Martin", "Mercier", "Moreau", "Petit", "Robert", "Roux",
	"Simon", "Thomas",
}

func randomPlayer(rng *rand.Rand, taken map[string]bool) swiss.Player {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]

	var id string
	for {
		id = fmt.Sprintf("%c%c%04d",
			'A'+rng.Intn(26), 'A'+rng.Intn(26), rng.Intn(10000))
		if !taken[id] {
			taken[id] = true
			break
		}
	}

	age := 10 + rng.Intn(80)
	birthDate := time.Now().AddDate(-age, 0, -rng.Intn(365))

	return swiss.Player{
		FirstName:  first,
		LastName:   last,
		BirthDate:  time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC),
		NationalID: id,
	}
}

func main() {
	count := flag.Int("players", 100, "Number of players to generate")
	tournamentCount := flag.Int("tournaments", 2, "Number of empty tournaments to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	rng := rand.New(rand.NewSource(*seed))

	taken := make(map[string]bool, *count)
	playerList := make([]swiss.Player, 0, *count)
	for i := 0; i < *count; i++ {
		playerList = append(playerList, randomPlayer(rng, taken))
	}
	playerStore := store.NewPlayerStore(cfg.PlayersPath())
	if err := playerStore.Save(playerList); err != nil {
		log.Fatalf("Error saving players: %v", err)
	}
	fmt.Printf("Generated %d players in %s\n", len(playerList), cfg.PlayersPath())

	locations := []string{"Paris", "Lyon", "Lille", "Bordeaux", "Nantes"}
	tournamentList := make([]*swiss.Tournament, 0, *tournamentCount)
	for i := 0; i < *tournamentCount; i++ {
		start := time.Now().AddDate(0, 0, 7*(i+1))
		t := swiss.NewTournament(
			fmt.Sprintf("Open %d", i+1),
			locations[rng.Intn(len(locations))],
			"generated tournament",
			time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
			time.Date(start.Year(), start.Month(), start.Day()+2, 0, 0, 0, 0, time.UTC),
			cfg.DefaultRounds)
		tournamentList = append(tournamentList, t)
	}
	tournamentStore := store.NewTournamentStore(cfg.TournamentsPath())
	if err := tournamentStore.SaveAll(tournamentList); err != nil {
		log.Fatalf("Error saving tournaments: %v", err)
	}
	fmt.Printf("Generated %d tournaments in %s\n", len(tournamentList), cfg.TournamentsPath())
}
