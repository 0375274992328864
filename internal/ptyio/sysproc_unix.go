//go:build !windows

package ptyio

import "syscall"

// sysProcAttr detaches the child into its own session with the pty slave
// as its controlling terminal, the same setup pty.Start performs.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}
}
