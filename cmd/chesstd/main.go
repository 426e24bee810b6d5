/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/store"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":        handleHelp,
	"players":     handlePlayers,
	"addplayer":   handleAddPlayer,
	"rmplayer":    handleRmPlayer,
	"create":      handleCreate,
	"tournaments": handleTournaments,
	"register":    handleRegister,
	"withdraw":    handleWithdraw,
	"run":         handleRun,
	"standings":   handleStandings,
	"report":      handleReport,
}

var (
	cfg         *internal.Config
	players     *store.PlayerStore
	tournaments *store.TournamentStore
)

func main() {
	var err error
	cfg, err = internal.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	players = store.NewPlayerStore(cfg.PlayersPath())
	tournaments = store.NewTournamentStore(cfg.TournamentsPath())

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(args []string) {
	usage()
}
