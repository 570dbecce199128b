package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandError describes a command that could not be started or exited non-zero.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int // -1 when the process never ran to completion
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", cmdline, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", cmdline, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandRunner returns a CommandRunner that executes commands with the
// current environment overlaid by extraEnv ("KEY=VALUE" entries).
func NewCommandRunner(extraEnv []string) CommandRunner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		cmd := exec.CommandContext(ctx, name, args...)
		if len(extraEnv) > 0 {
			cmd.Env = MergeEnv(os.Environ(), extraEnv)
		}

		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		out, err := cmd.Output()
		if err != nil {
			cerr := &CommandError{
				Name:     name,
				Args:     args,
				ExitCode: -1,
				Stderr:   strings.TrimSpace(stderr.String()),
				Err:      err,
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				cerr.ExitCode = exitErr.ExitCode()
			}
			return out, cerr
		}
		return out, nil
	}
}

// SplitCommandLine splits a command line into arguments, honoring simple quotes.
func SplitCommandLine(input string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune
	escaped := false

	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ' ' || r == '\t' || r == '\n':
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if escaped {
		return nil, errors.New("unfinished escape sequence in command")
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote in command")
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}

// ParseCommand splits a configured command line and expands a leading ~ in
// the executable. An empty input yields fallback.
func ParseCommand(input, fallback string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		input = fallback
	}
	parts, err := SplitCommandLine(input)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, errors.New("command is empty")
	}
	parts[0] = ExpandPath(parts[0])
	return parts, nil
}
