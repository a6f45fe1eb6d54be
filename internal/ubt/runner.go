// Package ubt invokes UnrealBuildTool through the engine's Build scripts.
package ubt

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jonpas/ue4cli/internal/codes"
)

// Commander interface for testing
type Commander interface {
	Run() error
}

// Runner invokes UnrealBuildTool for a given engine installation
type Runner struct {
	engineRoot  string
	execCommand func(name string, args ...string) Commander
}

// NewRunner creates a runner for the engine rooted at engineRoot
func NewRunner(engineRoot string) *Runner {
	return &Runner{
		engineRoot: engineRoot,
		execCommand: func(name string, args ...string) Commander {
			return exec.Command(name, args...)
		},
	}
}

// ScriptPath returns the per-OS Build script that wraps UnrealBuildTool
func (r *Runner) ScriptPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(r.engineRoot, "Engine", "Build", "BatchFiles", "Build.bat")
	case "darwin":
		return filepath.Join(r.engineRoot, "Engine", "Build", "BatchFiles", "Mac", "Build.sh")
	default:
		return filepath.Join(r.engineRoot, "Engine", "Build", "BatchFiles", "Linux", "Build.sh")
	}
}

// BuildArgs builds the argument list for an UnrealBuildTool invocation
func (r *Runner) BuildArgs(target, platform, configuration string, extraArgs []string) ([]string, error) {
	if target == "" {
		return nil, fmt.Errorf("target not specified")
	}

	if platform == "" {
		return nil, fmt.Errorf("platform not specified")
	}

	if configuration == "" {
		return nil, fmt.Errorf("configuration not specified")
	}

	args := []string{target, platform, configuration}
	args = append(args, extraArgs...)

	return args, nil
}

// Run invokes UnrealBuildTool and waits for it to finish.
// Exit codes that ECompilationResult counts as success are not errors.
func (r *Runner) Run(target, platform, configuration string, extraArgs []string) error {
	args, err := r.BuildArgs(target, platform, configuration, extraArgs)
	if err != nil {
		return err
	}

	c := r.execCommand(r.ScriptPath(), args...)
	if cmd, ok := c.(*exec.Cmd); ok {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err = c.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			if codes.IsSuccess(code) {
				return nil
			}

			return fmt.Errorf("UnrealBuildTool failed (exit code %d): %s: %w", code, codes.GetErrorMessage(code), err)
		}

		return fmt.Errorf("failed to run UnrealBuildTool: %w", err)
	}

	return nil
}
