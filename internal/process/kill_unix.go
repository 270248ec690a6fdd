//go:build !windows

// Package process stops the headless browser and every helper process it
// spawned.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid. Chrome
// forks renderer and GPU helpers that would outlive a plain kill of the
// launcher PID. Errors are ignored; the launcher's own Kill runs afterwards.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
