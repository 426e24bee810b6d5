/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"time"

	"github.com/ThomasDpr/chess-tournaments/internal"
)

// Player is a registered club member: identity plus cumulative career score.
// CareerScore only ever grows, by 0, 0.5 or 1 per recorded match.
type Player struct {
	FirstName   string
	LastName    string
	BirthDate   time.Time
	NationalID  string
	CareerScore float64
}

// NewPlayer validates and normalizes the operator-entered fields and builds
// a Player with a zero career score. Names are title-cased, the national id
// is normalized to the AB1234 format, and the birth date accepts the
// DD-MM-YYYY family of formats.
func NewPlayer(firstName, lastName, birthDate, nationalID string) (Player, error) {
	parsed, err := internal.ParseBirthDate(birthDate)
	if err != nil {
		return Player{}, &InvalidDateFormatError{Input: birthDate}
	}

	id, ok := internal.NormalizeNationalID(nationalID)
	if !ok {
		return Player{}, &InvalidNationalIDError{NationalID: nationalID}
	}

	return Player{
		FirstName:  internal.CapitalizeName(firstName),
		LastName:   internal.CapitalizeName(lastName),
		BirthDate:  parsed,
		NationalID: id,
	}, nil
}

// DisplayName renders "First Last (AB1234)" for prompts and tables.
func (p Player) DisplayName() string {
	return fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, p.NationalID)
}
