/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
	"github.com/ThomasDpr/chess-tournaments/view"
)

// findTournament resolves a --tournament argument against the stored
// aggregates, matching the id exactly or the name case-insensitively.
func findTournament(key string) *swiss.Tournament {
	list, err := tournaments.Load()
	if err != nil {
		log.Fatalf("Error loading tournaments: %v", err)
	}
	var match *swiss.Tournament
	for _, t := range list {
		if t.ID == key || strings.EqualFold(t.Name, key) {
			if match != nil {
				log.Fatalf("Error: %q matches more than one tournament; use the id instead", key)
			}
			match = t
		}
	}
	if match == nil {
		log.Fatalf("Error: no tournament named %q", key)
	}
	return match
}

func requireTournamentFlag(fs *flag.FlagSet, key string) *swiss.Tournament {
	if key == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --tournament <name|id>.")
		fs.Usage()
		os.Exit(1)
	}
	return findTournament(key)
}

func handleCreate(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "Tournament name")
	location := fs.String("location", "", "Tournament location")
	description := fs.String("description", "", "Free-form description")
	start := fs.String("start", "", "Start date (YYYY-MM-DD)")
	end := fs.String("end", "", "End date (YYYY-MM-DD)")
	rounds := fs.Int("rounds", cfg.DefaultRounds, "Number of rounds")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" || *location == "" || *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "Please provide --name, --location, --start, and --end.")
		fs.Usage()
		os.Exit(1)
	}
	if *rounds < 1 {
		fmt.Fprintln(os.Stderr, "Please provide a --rounds count of at least 1.")
		fs.Usage()
		os.Exit(1)
	}

	startDate, err := internal.ParseDateOrZero(*start)
	if err != nil || startDate.IsZero() {
		log.Fatalf("Error creating tournament: %v", &swiss.InvalidDateFormatError{Input: *start})
	}
	endDate, err := internal.ParseDateOrZero(*end)
	if err != nil || endDate.IsZero() {
		log.Fatalf("Error creating tournament: %v", &swiss.InvalidDateFormatError{Input: *end})
	}
	if endDate.Before(startDate) {
		log.Fatalf("Error creating tournament: end date %s is before start date %s", *end, *start)
	}

	t := swiss.NewTournament(*name, *location, *description, startDate, endDate, *rounds)
	if err := tournaments.Save(t); err != nil {
		log.Fatalf("Error saving tournament: %v", err)
	}
	fmt.Printf("Created %q (%d rounds, needs at least %d players)\nid: %s\n",
		t.Name, t.RoundsCount, t.MinimumPlayersRequired(), t.ID)
}

func handleTournaments(args []string) {
	list, err := tournaments.Load()
	if err != nil {
		log.Fatalf("Error loading tournaments: %v", err)
	}
	fmt.Print(view.BuildTournamentListOutput(list))
}

func handleRegister(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	key := fs.String("tournament", "", "Tournament name or id")
	playerID := fs.String("player", "", "National id of the player to enroll")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := requireTournamentFlag(fs, *key)
	if *playerID == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --player id.")
		fs.Usage()
		os.Exit(1)
	}
	if t.Started() {
		log.Fatalf("Error: %q has already started", t.Name)
	}

	nationalID, ok := internal.NormalizeNationalID(*playerID)
	if !ok {
		log.Fatalf("Error enrolling player: %v", &swiss.InvalidNationalIDError{NationalID: *playerID})
	}
	player, err := players.Find(nationalID)
	if err != nil {
		log.Fatalf("Error enrolling player: %v", err)
	}
	if err := t.AddPlayer(player.NationalID, 0); err != nil {
		log.Fatalf("Error enrolling player: %v", err)
	}
	if err := tournaments.Save(t); err != nil {
		log.Fatalf("Error saving tournament: %v", err)
	}
	fmt.Printf("Enrolled %s in %q (%d/%d players)\n",
		player.DisplayName(), t.Name, len(t.Roster), t.MinimumPlayersRequired())
}

func handleWithdraw(args []string) {
	fs := flag.NewFlagSet("withdraw", flag.ExitOnError)
	key := fs.String("tournament", "", "Tournament name or id")
	playerID := fs.String("player", "", "National id of the player to withdraw")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := requireTournamentFlag(fs, *key)
	if *playerID == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --player id.")
		fs.Usage()
		os.Exit(1)
	}

	nationalID, ok := internal.NormalizeNationalID(*playerID)
	if !ok {
		log.Fatalf("Error withdrawing player: %v", &swiss.InvalidNationalIDError{NationalID: *playerID})
	}
	if err := t.RemovePlayer(nationalID); err != nil {
		log.Fatalf("Error withdrawing player: %v", err)
	}
	if err := tournaments.Save(t); err != nil {
		log.Fatalf("Error saving tournament: %v", err)
	}
	fmt.Printf("Withdrew %s from %q\n", nationalID, t.Name)
}

func handleRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	key := fs.String("tournament", "", "Tournament name or id")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := requireTournamentFlag(fs, *key)

	v := view.New(os.Stdin, os.Stdout)
	if t.Started() {
		v.Printf("Resuming %q at round %d of %d.\n", t.Name, t.CurrentRound, t.RoundsCount)
	} else {
		v.Printf("Starting %q: %d rounds, %d players.\n", t.Name, t.RoundsCount, len(t.Roster))
	}

	runner := &swiss.Runner{
		Tournament:  t,
		Players:     players,
		Tournaments: tournaments,
		Collector:   v,
	}
	status, err := runner.Run()
	if err != nil {
		log.Fatalf("Error running tournament: %v", err)
	}

	list, loadErr := players.Load()
	if loadErr != nil {
		log.Fatalf("Error loading players: %v", loadErr)
	}
	switch status {
	case swiss.RunCompleted:
		v.Printf("\n%q is complete.\n\n", t.Name)
		v.Printf("%s", view.BuildStandingsOutput(t, list))
	case swiss.RunPaused:
		v.Printf("\nTournament paused. Run the same command again to resume.\n")
	}
}

func handleStandings(args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	key := fs.String("tournament", "", "Tournament name or id")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	t := requireTournamentFlag(fs, *key)

	list, err := players.Load()
	if err != nil {
		log.Fatalf("Error loading players: %v", err)
	}
	fmt.Print(view.BuildStandingsOutput(t, list))
}
