// internal/render/render.go
//
// Terminal output for the CLI: coloured feedback tiles, suggestions,
// candidate statistics, opener leaderboards and benchmark reports.
// Colour is dropped automatically when stdout is not a terminal.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/rankings"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	tile = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF"))

	tileStyles = [...]lipgloss.Style{
		feedback.Absent:  tile.Background(lipgloss.Color("#3A3A3C")),
		feedback.Present: tile.Background(lipgloss.Color("#B59F3B")),
		feedback.Correct: tile.Background(lipgloss.Color("#538D4E")),
	}

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	GuessStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ECE6A"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#737AA2"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))
)

// Tiles draws guess as coloured letter tiles.
func Tiles(guess words.Word, p feedback.Pattern) string {
	cells := make([]string, words.Length)
	for i := range words.Length {
		cells[i] = tileStyles[p[i]].Render(string(guess[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Board draws every turn of a game, one row per guess.
func Board(turns []solver.Turn) string {
	rows := make([]string, len(turns))
	for i, t := range turns {
		rows[i] = Tiles(t.Guess, t.Feedback)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Suggestion formats a recommended guess with its score.
func Suggestion(sg solver.Suggestion) string {
	return fmt.Sprintf("Suggested guess: %s %s",
		GuessStyle.Render(sg.Word.String()),
		DimStyle.Render(fmt.Sprintf("(%.4f %s)", sg.Score, sg.Unit())))
}

// Stats formats how far the candidate set has shrunk.
func Stats(st solver.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Remaining solutions: %d (eliminated %d of %d, %.1f%%)",
		st.Remaining, st.Eliminated, st.Total, st.EliminatedPct)
	if len(st.Solutions) > 0 {
		list := make([]string, len(st.Solutions))
		for i, w := range st.Solutions {
			list[i] = w.String()
		}
		b.WriteString("\n" + DimStyle.Render(strings.Join(list, " ")))
	}
	return b.String()
}

// Openers formats a starting-word leaderboard for mode.
func Openers(title string, mode solver.Mode, list []rankings.Opener) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title) + "\n")
	for i, o := range list {
		fmt.Fprintf(&b, "%3d. %s  %8.4f %-18s largest %4d  split %5.1f%%\n",
			i+1, GuessStyle.Render(o.Word.String()), o.Score(mode), mode.Unit(),
			o.LargestBucket, 100*o.SplitEfficiency)
	}
	return b.String()
}

// Report formats a benchmark summary.
func Report(r game.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s mode: %d/%d solved, mean %.3f guesses, worst %d\n",
		HeaderStyle.Render("Benchmark"), r.Mode, r.Won, r.Games, r.Mean, r.Worst)

	peak := 0
	for _, n := range r.Histogram {
		peak = max(peak, n)
	}
	for turns, n := range r.Histogram {
		if turns == 0 {
			continue
		}
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", (n*40+peak-1)/peak)
		}
		fmt.Fprintf(&b, "%d %s %d\n", turns, GuessStyle.Render(bar), n)
	}
	if len(r.Lost) > 0 {
		lost := make([]string, len(r.Lost))
		for i, w := range r.Lost {
			lost[i] = w.String()
		}
		b.WriteString(ErrorStyle.Render("failed: "+strings.Join(lost, " ")) + "\n")
	}
	return b.String()
}
