/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ThomasDpr/chess-tournaments/internal"
)

func TestRandomPlayersAreValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	taken := make(map[string]bool)
	now := time.Now()

	for i := 0; i < 200; i++ {
		p := randomPlayer(rng, taken)
		if normalized, ok := internal.NormalizeNationalID(p.NationalID); !ok || normalized != p.NationalID {
			t.Fatalf("generated id %q is not a valid national id", p.NationalID)
		}
		if p.FirstName == "" || p.LastName == "" {
			t.Fatalf("generated player has empty name: %+v", p)
		}
		age := now.Year() - p.BirthDate.Year()
		if age < 9 || age > 91 {
			t.Fatalf("generated birth date out of range: %v", p.BirthDate)
		}
		if p.CareerScore != 0 {
			t.Fatalf("generated player has nonzero career score: %v", p.CareerScore)
		}
	}
	if len(taken) != 200 {
		t.Errorf("ids not unique: %d distinct of 200", len(taken))
	}
}
