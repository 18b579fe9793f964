// assets/embed.go
//
// Embedded default word lists so the solver runs with no files configured.
//   - answers.txt: words that can be a puzzle solution.
//   - allowed.txt: extra valid guesses that are never solutions.
//
// Lines are trimmed and upper-cased; blank lines and "#" comments are skipped.
// Validation of length/alphabet is left to the words package.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded solution words.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded guess-only words.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
