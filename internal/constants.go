/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	// TimestampFormat is the fixed-width local-time stamp recorded on
	// rounds (day-month-year-hour-minute). Display and audit only; round
	// ordering is by list position.
	TimestampFormat = "02-01-2006-15-04"

	// DateFormat is the on-disk format for tournament start/end dates.
	DateFormat = "2006-01-02"

	// BirthDateFormat is the canonical on-disk format for player birth
	// dates.
	BirthDateFormat = "02-01-2006"

	DefaultRoundsCount = 4
)
