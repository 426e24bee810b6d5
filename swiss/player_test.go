/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	cases := []struct {
		name       string
		first      string
		last       string
		birthDate  string
		nationalID string
		wantErr    error
		wantID     string
		wantFirst  string
		wantLast   string
	}{
		{
			name:  "normalizes casing and id",
			first: "thomas", last: "DUPRÉ",
			birthDate: "26-12-1999", nationalID: "td 2612",
			wantID: "TD2612", wantFirst: "Thomas", wantLast: "Dupré",
		},
		{
			name:  "slash date format",
			first: "Jean", last: "Martin",
			birthDate: "01/02/1985", nationalID: "JM0102",
			wantID: "JM0102", wantFirst: "Jean", wantLast: "Martin",
		},
		{
			name:  "bad national id",
			first: "Ann", last: "Lee",
			birthDate: "26-12-1999", nationalID: "12ABCD",
			wantErr: &InvalidNationalIDError{},
		},
		{
			name:  "bad birth date",
			first: "Ann", last: "Lee",
			birthDate: "99-99-9999", nationalID: "AL1234",
			wantErr: &InvalidDateFormatError{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPlayer(c.first, c.last, c.birthDate, c.nationalID)
			if c.wantErr != nil {
				var idErr *InvalidNationalIDError
				var dateErr *InvalidDateFormatError
				switch c.wantErr.(type) {
				case *InvalidNationalIDError:
					if !errors.As(err, &idErr) {
						t.Fatalf("expected InvalidNationalIDError, got %v", err)
					}
				case *InvalidDateFormatError:
					if !errors.As(err, &dateErr) {
						t.Fatalf("expected InvalidDateFormatError, got %v", err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlayer returned error: %v", err)
			}
			if p.NationalID != c.wantID {
				t.Errorf("NationalID = %q; want %q", p.NationalID, c.wantID)
			}
			if p.FirstName != c.wantFirst || p.LastName != c.wantLast {
				t.Errorf("name = %q %q; want %q %q",
					p.FirstName, p.LastName, c.wantFirst, c.wantLast)
			}
			if p.CareerScore != 0 {
				t.Errorf("new player career score = %v; want 0", p.CareerScore)
			}
		})
	}
}

func TestPlayerDisplayName(t *testing.T) {
	p, err := NewPlayer("thomas", "dupré", "26-12-1999", "TD2612")
	if err != nil {
		t.Fatalf("NewPlayer returned error: %v", err)
	}
	if got := p.DisplayName(); got != "Thomas Dupré (TD2612)" {
		t.Errorf("DisplayName = %q", got)
	}
}
