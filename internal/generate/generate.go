// Package generate renders the extracted settings into the client-side
// env script and writes it to the destination path.
package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quickchat-dev/envgen/internal/envfile"
	"github.com/rs/zerolog/log"
)

// Outcome reports how a run ended. Skips are expected outcomes, not errors.
type Outcome string

const (
	Written         Outcome = "WRITTEN"
	SkippedNoSource Outcome = "SKIPPED_NO_SOURCE"
	SkippedNoKey    Outcome = "SKIPPED_NO_KEY"
)

// Values are embedded verbatim. Quotes or backslashes inside a value end
// up in the output unescaped; the source file owns that risk.
const fileTemplate = `// Auto-generated from .env
window.ENV = {
    OPENAI_API_KEY: "%s",
    OPENAI_MODEL: "%s"
};
`

// Render produces the full destination file contents.
func Render(s envfile.Settings) string {
	return fmt.Sprintf(fileTemplate, s.APIKey, s.Model)
}

// WriteFile overwrites path with the rendered settings.
func WriteFile(path string, s envfile.Settings) error {
	if err := os.WriteFile(path, []byte(Render(s)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Run reads the source file at srcPath and regenerates dstPath from it.
// A missing source file or a missing/empty OPENAI_API_KEY skips the write
// and returns a skip outcome with a nil error. Any other failure (source
// unreadable, destination unwritable) is returned as an error.
func Run(srcPath, dstPath string) (Outcome, error) {
	settings, err := envfile.ParseFile(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", srcPath).Msg("No env file found, nothing to generate")
			return SkippedNoSource, nil
		}
		return "", fmt.Errorf("reading %s: %w", srcPath, err)
	}

	if settings.APIKey == "" {
		log.Info().Str("path", srcPath).Msg("No OPENAI_API_KEY found, nothing to generate")
		return SkippedNoKey, nil
	}

	if err := WriteFile(dstPath, settings); err != nil {
		return "", err
	}

	log.Info().
		Str("path", dstPath).
		Str("model", settings.Model).
		Msg("Generated env script")

	return Written, nil
}
