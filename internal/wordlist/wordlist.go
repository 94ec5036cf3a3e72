// Package wordlist loads the word lists used for generated drills.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/tuit/internal/text"
)

// LoadWords reads one word per line from path. Blank lines are skipped and
// curly quotes are straightened.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(text.Normalize(scanner.Text()))
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
