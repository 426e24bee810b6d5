/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store persists the player roster and the tournament aggregates as
// flat JSON files. Every save rewrites the whole file through a temp file and
// a rename, so a crash mid-write never leaves a truncated data file behind.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ThomasDpr/chess-tournaments/swiss"
)

// LoadError reports a data file that exists but could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError reports a data file that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("unable to save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// writeFileAtomic writes data to path by way of a temp file in the same
// directory followed by a rename. Parent directories are created as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// LoadAll reads both data files concurrently.
func LoadAll(players *PlayerStore, tournaments *TournamentStore) ([]swiss.Player, []*swiss.Tournament, error) {
	var (
		g              errgroup.Group
		playerList     []swiss.Player
		tournamentList []*swiss.Tournament
	)
	g.Go(func() error {
		var err error
		playerList, err = players.Load()
		return err
	})
	g.Go(func() error {
		var err error
		tournamentList, err = tournaments.Load()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return playerList, tournamentList, nil
}
