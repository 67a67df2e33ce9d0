//go:build !windows

package escli

import "os/exec"

// setCmdLine is a no-op off Windows; the argument array is used as is.
func setCmdLine(_ *exec.Cmd, _ string) {}
