/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package view handles all terminal interaction: menus, prompts, aligned
// tables, and result entry during a running round.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ThomasDpr/chess-tournaments/internal"
	"github.com/ThomasDpr/chess-tournaments/swiss"
)

// View reads operator input line by line and writes everything it shows to a
// single output stream.
type View struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *View {
	return &View{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (v *View) Printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}

// Prompt prints the label and returns the next input line, trimmed.
func (v *View) Prompt(label string) (string, error) {
	fmt.Fprintf(v.out, "%s: ", label)
	line, err := v.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptInt keeps asking until the operator enters an integer in
// [minVal, maxVal].
func (v *View) PromptInt(label string, minVal, maxVal int) (int, error) {
	for {
		line, err := v.Prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < minVal || n > maxVal {
			fmt.Fprintf(v.out, "Please enter a number between %d and %d.\n", minVal, maxVal)
			continue
		}
		return n, nil
	}
}

// Confirm asks a yes/no question; only "y" and "yes" count as yes.
func (v *View) Confirm(label string) (bool, error) {
	line, err := v.Prompt(label + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Select shows a numbered menu and returns the zero-based index of the
// chosen option.
func (v *View) Select(label string, options []string) (int, error) {
	fmt.Fprintf(v.out, "%s\n", label)
	for i, opt := range options {
		fmt.Fprintf(v.out, "  %d) %s\n", i+1, opt)
	}
	n, err := v.PromptInt("Choice", 1, len(options))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// CollectResult prompts the operator for the outcome of one board. Option 4
// saves and pauses the tournament.
func (v *View) CollectResult(roundName string, board int, player1, player2 swiss.PlayerCard) (swiss.Outcome, error) {
	fmt.Fprintf(v.out, "\n%s, board %d:\n", roundName, board)
	fmt.Fprintf(v.out, "  %s (%s) vs %s (%s)\n",
		player1.Name, internal.ScoreToString(player1.Score),
		player2.Name, internal.ScoreToString(player2.Score))

	choice, err := v.Select("Result", []string{
		fmt.Sprintf("%s wins (1-0)", player1.Name),
		fmt.Sprintf("%s wins (0-1)", player2.Name),
		"Draw (½-½)",
		"Save and pause the tournament",
	})
	if err != nil {
		return 0, err
	}
	switch choice {
	case 0:
		return swiss.OutcomePlayer1Wins, nil
	case 1:
		return swiss.OutcomePlayer2Wins, nil
	case 2:
		return swiss.OutcomeDraw, nil
	}
	return swiss.OutcomeCancelled, nil
}
