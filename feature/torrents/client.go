package torrents

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Runner executes an external program and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec. Arguments are passed directly to
// the process, never through a shell.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, &CommandError{Args: args, Output: strings.TrimSpace(string(exitErr.Stderr)), Err: err}
		}
		return out, &CommandError{Args: args, Err: err}
	}
	return out, nil
}

// Client drives the transmission-remote binary.
type Client struct {
	cfg    Config
	runner Runner
	parser *Parser
}

// NewClient creates a client. A nil runner uses ExecRunner.
func NewClient(cfg Config, runner Runner) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{
		cfg:    cfg,
		runner: runner,
		parser: NewParser(cfg.ParserOptions()),
	}
}

// Parser returns the listing parser used by List.
func (c *Client) Parser() *Parser {
	return c.parser
}

// List returns the torrents currently known to the daemon.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	out, err := c.run(ctx, "-l")
	if err != nil {
		return nil, err
	}
	return c.parser.Parse(string(out)), nil
}

// Add queues a magnet link for download into the configured directory and
// returns the tool's output.
func (c *Client) Add(ctx context.Context, magnetURI string) (string, error) {
	magnetURI = strings.TrimSpace(magnetURI)
	if magnetURI == "" {
		return "", &ValidationError{Field: "magnetUri", Message: "missing required body parameter: magnetUri"}
	}
	if strings.HasPrefix(magnetURI, "-") {
		return "", &ValidationError{Field: "magnetUri", Message: "magnetUri must not start with '-'"}
	}

	args := []string{"-a", magnetURI}
	if c.cfg.DownloadDir != "" {
		args = append(args, "-w", c.cfg.DownloadDir)
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	return c.runner.Run(ctx, c.cfg.Binary, c.args(args...)...)
}

// args prefixes the connection arguments: [host] [--auth user:pass] args...
func (c *Client) args(args ...string) []string {
	full := make([]string, 0, len(args)+3)
	if c.cfg.Host != "" {
		full = append(full, c.cfg.Host)
	}
	if c.cfg.Auth != "" {
		full = append(full, "--auth", c.cfg.Auth)
	}
	return append(full, args...)
}
