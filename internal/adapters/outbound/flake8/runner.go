// Package flake8 invokes the external style checker as a subprocess.
package flake8

import (
	"fmt"
	"os"
	"os/exec"
)

// Runner implements domain.StyleChecker by spawning the checker binary
// directly, without a shell. The checker's rule configuration is whatever
// the project-level .flake8 file says; nbstyle passes nothing but the path.
type Runner struct {
	binary string
}

// New creates a Runner for the given checker binary.
func New(binary string) *Runner {
	return &Runner{binary: binary}
}

// Run checks scriptPath and streams the checker's stdout to warnPath. The
// checker exits non-zero whenever it finds anything, so its exit status is
// deliberately not treated as an error; only failing to start it is.
func (r *Runner) Run(scriptPath, warnPath string) error {
	out, err := os.Create(warnPath)
	if err != nil {
		return fmt.Errorf("creating warnings file: %w", err)
	}
	defer out.Close()

	cmd := exec.Command(r.binary, scriptPath)
	cmd.Stdout = out

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("running %s: %w", r.binary, err)
	}
	return nil
}
