// Package envfile extracts the OpenAI settings envgen cares about from a
// dotenv-style file. It is deliberately not a full dotenv parser: values
// are taken raw (no escape expansion, no comment stripping) with exactly
// one layer of surrounding quote characters removed.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultModel is used when the source file has no OPENAI_MODEL entry.
const DefaultModel = "gpt-3.5-turbo"

const (
	apiKeyPrefix = "OPENAI_API_KEY="
	modelPrefix  = "OPENAI_MODEL="
)

// Settings holds the values extracted from the source file.
type Settings struct {
	APIKey string
	Model  string
}

// Parse scans r line by line. Lines are trimmed of surrounding whitespace,
// then matched against the two recognized KEY= prefixes; everything else
// (blank lines, comments, unrelated keys) is inert. When a key appears
// more than once, the last occurrence wins.
func Parse(r io.Reader) (Settings, error) {
	settings := Settings{Model: DefaultModel}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, apiKeyPrefix); ok {
			settings.APIKey = trimQuotes(rest)
		} else if rest, ok := strings.CutPrefix(line, modelPrefix); ok {
			settings.Model = trimQuotes(rest)
		}
	}
	if err := scanner.Err(); err != nil {
		return settings, fmt.Errorf("scanning env file: %w", err)
	}

	return settings, nil
}

// ParseFile opens path and parses it. A missing file surfaces the open
// error unchanged so callers can distinguish absence from a read failure.
func ParseFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	return Parse(f)
}

// trimQuotes removes at most one leading and one trailing quote character.
// The two ends are trimmed independently, so mismatched quotes are still
// stripped and nested quoting loses only the outer layer.
func trimQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}
