package vcs

import (
	"bytes"
	"os/exec"
)

// CommandExecutor runs git commands. Tests substitute a recording fake.
type CommandExecutor interface {
	// Execute runs a command, discarding stdout
	Execute(cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its stdout
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(cmd *exec.Cmd) error {
	_, err := e.ExecuteWithOutput(cmd)
	return err
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation, args := splitGitArgs(cmd.Args)
		return "", NewGitError(operation, args, err, stderr.String())
	}
	return stdout.String(), nil
}

// splitGitArgs returns the git subcommand and its arguments from a full
// argument vector such as ["git", "diff", "--staged"].
func splitGitArgs(argv []string) (string, []string) {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	if len(argv) == 0 {
		return "", nil
	}
	return argv[0], argv[1:]
}
