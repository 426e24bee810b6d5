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
	"sort"
	"strings"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
	"github.com/ThomasDpr/chess-tournaments/view"
)

func handlePlayers(args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	find := fs.String("find", "", "Only show players whose name or id contains this text")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	list, err := players.Load()
	if err != nil {
		log.Fatalf("Error loading players: %v", err)
	}
	if *find != "" {
		needle := strings.ToLower(*find)
		filtered := list[:0]
		for _, p := range list {
			haystack := strings.ToLower(fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, p.NationalID))
			if strings.Contains(haystack, needle) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].FirstName != list[j].FirstName {
			return list[i].FirstName < list[j].FirstName
		}
		return list[i].LastName < list[j].LastName
	})

	fmt.Print(view.BuildPlayerListOutput(list))
}

func handleAddPlayer(args []string) {
	fs := flag.NewFlagSet("addplayer", flag.ExitOnError)
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")
	birthDate := fs.String("birthdate", "", "Birth date (DD-MM-YYYY)")
	id := fs.String("id", "", "National id (two letters, four digits)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *first == "" || *last == "" || *birthDate == "" || *id == "" {
		fmt.Fprintln(os.Stderr, "Please provide --first, --last, --birthdate, and --id.")
		fs.Usage()
		os.Exit(1)
	}

	player, err := swiss.NewPlayer(*first, *last, *birthDate, *id)
	if err != nil {
		log.Fatalf("Error registering player: %v", err)
	}

	list, err := players.Load()
	if err != nil {
		log.Fatalf("Error loading players: %v", err)
	}
	for _, existing := range list {
		if existing.NationalID == player.NationalID {
			log.Fatalf("Error registering player: %v",
				&swiss.PlayerExistsError{NationalID: player.NationalID})
		}
	}
	list = append(list, player)
	if err := players.Save(list); err != nil {
		log.Fatalf("Error saving players: %v", err)
	}
	fmt.Printf("Registered %s\n", player.DisplayName())
}

func handleRmPlayer(args []string) {
	fs := flag.NewFlagSet("rmplayer", flag.ExitOnError)
	id := fs.String("id", "", "National id of the player to remove")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *id == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --id.")
		fs.Usage()
		os.Exit(1)
	}
	nationalID, ok := internal.NormalizeNationalID(*id)
	if !ok {
		log.Fatalf("Error removing player: %v", &swiss.InvalidNationalIDError{NationalID: *id})
	}

	list, err := players.Load()
	if err != nil {
		log.Fatalf("Error loading players: %v", err)
	}
	idx := -1
	for i, p := range list {
		if p.NationalID == nationalID {
			idx = i
			break
		}
	}
	if idx == -1 {
		log.Fatalf("Error removing player: %v", &swiss.UnknownPlayerError{NationalID: nationalID})
	}

	if !*yes {
		v := view.New(os.Stdin, os.Stdout)
		ok, err := v.Confirm(fmt.Sprintf("Remove %s from the register?", list[idx].DisplayName()))
		if err != nil {
			log.Fatalf("Error reading confirmation: %v", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return
		}
	}

	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	if err := players.Save(list); err != nil {
		log.Fatalf("Error saving players: %v", err)
	}
	fmt.Printf("Removed %s\n", removed.DisplayName())
}
