package runtime

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/possible-bj/gitscript/internal/config"
	"github.com/possible-bj/gitscript/internal/git"
	"github.com/possible-bj/gitscript/internal/tui"
)

// Context provides access to configuration, output and the runner for commands
type Context struct {
	Config config.Config
	Splog  *tui.Splog
	Runner git.Runner
	RunID  string
}

// NewContext creates a context from an already loaded configuration
func NewContext(cfg config.Config, stdout, stderr io.Writer) (*Context, error) {
	runID := uuid.NewString()

	tui.ConfigureColors(stdout, cfg.NoColor)
	splog, err := tui.NewSplogWithOptions(tui.Options{
		Stdout: stdout,
		Stderr: stderr,
		Debug:  cfg.Debug,
		Log:    cfg.Log,
		RunID:  runID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Context{
		Config: cfg,
		Splog:  splog,
		Runner: git.NewCommandRunner(cfg),
		RunID:  runID,
	}, nil
}

// GetContext loads the configuration from the environment and creates a context
func GetContext(stdout, stderr io.Writer) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewContext(cfg, stdout, stderr)
}

// Close releases the log file, if any
func (c *Context) Close() error {
	return c.Splog.Close()
}
