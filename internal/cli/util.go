package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// lockPath returns the lock file guarding a ledger file.
func lockPath(storagePath string) string {
	return storagePath + ".lock"
}

// AcquireLedgerLock claims the lock file for the given ledger file so two
// invocations cannot rewrite it at the same time. A lock held by another
// live process is refused; one left behind by a dead process, written by
// this process, or with unreadable contents is reclaimed.
func AcquireLedgerLock(storagePath string) error {
	path := lockPath(storagePath)

	data, err := os.ReadFile(path)
	if err == nil {
		pid, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if convErr == nil && pid != os.Getpid() && processRunning(pid) {
			return fmt.Errorf("ledger %s is locked by process %d", storagePath, pid)
		}
		os.Remove(path)
	}

	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

// ReleaseLedgerLock removes the lock file for the given ledger file.
func ReleaseLedgerLock(storagePath string) {
	os.Remove(lockPath(storagePath))
}

// processRunning checks whether a process with the given PID exists. On
// Unix-like systems os.FindProcess always succeeds, so signal 0 is sent to
// actually probe for the process.
func processRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
