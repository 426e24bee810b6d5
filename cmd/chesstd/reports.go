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

	"github.com/ThomasDpr/chess-tournaments/report"
	"github.com/ThomasDpr/chess-tournaments/store"
)

func handleReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	kind := fs.String("kind", "", "Report kind: players, tournaments, details, roster, or matches")
	key := fs.String("tournament", "", "Tournament name or id (details, roster, and matches reports)")
	format := fs.String("format", "", "Also export as txt, csv, or html")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	var r *report.Report
	switch *kind {
	case "players":
		list, err := players.Load()
		if err != nil {
			log.Fatalf("Error loading players: %v", err)
		}
		r = report.PlayersAlphabetical(list)
	case "tournaments":
		list, err := tournaments.Load()
		if err != nil {
			log.Fatalf("Error loading tournaments: %v", err)
		}
		r = report.TournamentsList(list)
	case "details":
		r = report.TournamentDetails(requireTournamentFlag(fs, *key))
	case "roster":
		t := requireTournamentFlag(fs, *key)
		list, _, err := store.LoadAll(players, tournaments)
		if err != nil {
			log.Fatalf("Error loading data: %v", err)
		}
		r = report.TournamentRoster(t, list)
	case "matches":
		r = report.RoundsAndMatches(requireTournamentFlag(fs, *key))
	default:
		fmt.Fprintln(os.Stderr, "Please provide a valid --kind (players, tournaments, details, roster, matches).")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Print(r.RenderTXT())

	if *format == "" {
		return
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Error exporting report: %v", err)
	}
	exporter := &report.Exporter{Dir: cfg.ReportsDir}
	path, err := exporter.Export(r, f)
	if err != nil {
		log.Fatalf("Error exporting report: %v", err)
	}
	fmt.Printf("\nReport exported to %s\n", path)
}
