package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/matzehuels/automatagraph/pkg/render/view"
)

// Environment variables consulted for defaults. Flags always win.
const (
	envViewer    = "AUTOMATAGRAPH_VIEWER"     // viewer command, e.g. "feh --scale-down"
	envFormat    = "AUTOMATAGRAPH_FORMAT"     // default --format
	envOutputDir = "AUTOMATAGRAPH_OUTPUT_DIR" // default --output-dir
)

// LoadEnv loads variables from the given dotenv files (".env" if none are
// named) without overriding ones already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// viewer returns the opener for this CLI: an explicit one if set, then
// $AUTOMATAGRAPH_VIEWER, then the platform default.
func (c *CLI) viewer() view.Opener {
	if c.opener != nil {
		return c.opener
	}
	if cmd := os.Getenv(envViewer); cmd != "" {
		return view.Program(cmd)
	}
	return view.Open
}
