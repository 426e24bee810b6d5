/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the operator-tunable settings for the tool.
type Config struct {
	DataDir       string
	ReportsDir    string
	DefaultRounds int
}

// LoadConfig reads configuration from the environment, optionally seeded
// from a .env file in the working directory. Missing variables fall back to
// the defaults the original data layout uses.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:       "datas",
		ReportsDir:    "reports",
		DefaultRounds: DefaultRoundsCount,
	}

	if dir := os.Getenv("CHESSTD_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if dir := os.Getenv("CHESSTD_REPORTS_DIR"); dir != "" {
		cfg.ReportsDir = dir
	}
	if roundsStr := os.Getenv("CHESSTD_DEFAULT_ROUNDS"); roundsStr != "" {
		rounds, err := strconv.Atoi(roundsStr)
		if err != nil || rounds < 1 {
			return nil, fmt.Errorf("invalid CHESSTD_DEFAULT_ROUNDS value %q", roundsStr)
		}
		cfg.DefaultRounds = rounds
	}

	return cfg, nil
}

// PlayersPath returns the players database file path.
func (c *Config) PlayersPath() string {
	return filepath.Join(c.DataDir, "players.json")
}

// TournamentsPath returns the tournaments database file path.
func (c *Config) TournamentsPath() string {
	return filepath.Join(c.DataDir, "tournaments.json")
}
