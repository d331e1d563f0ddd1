package internal

import (
	"os"
	"path/filepath"
)

var (
	DefaultAppName          = "coffer"
	DefaultConfigFolderName = DefaultAppName
	DefaultConfigPath       = filepath.Join(os.Getenv("HOME"), ".config", DefaultConfigFolderName)

	// Ledger files default to the working directory so a bare invocation
	// operates on a local ledger, matching the config search path.
	DefaultCSVPath    = "coffer.csv"
	DefaultSQLitePath = "coffer.db"
)
