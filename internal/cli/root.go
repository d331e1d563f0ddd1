/*
Copyright © 2025 Coffer Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coffer-cli/coffer/adapters"
	"github.com/coffer-cli/coffer/domain/ledger"
	"github.com/coffer-cli/coffer/internal"
)

var cfgFile string

// RootCMD wraps the root cobra.Command
type RootCMD struct {
	Root *cobra.Command
}

// NewRootCMD creates a new RootCMD with the given parameters
func NewRootCMD(params *CmdParams) *RootCMD {
	return &RootCMD{
		Root: NewRoot(params),
	}
}

// NewRoot creates and configures the root command. The persistent pre-run
// loads configuration, builds the logger, claims the ledger lock, opens
// the ledger store and loads the ledger into params; the persistent
// post-run saves the ledger back, closes the store and releases the lock.
// A command that fails skips the save, so the stored ledger stays as it
// was before the invocation.
func NewRoot(params *CmdParams) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          params.Use,
		Aliases:      []string{params.Alias},
		Short:        params.Short,
		Long:         params.Long,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return openLedger(cmd, params)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return saveLedger(cmd, params)
		},
	}

	// Validate palette
	if params.Palette == nil {
		params.Palette = []*cobra.Command{}
	}

	// Add commands to the root
	rootCmd.AddCommand(params.Palette...)

	// Define persistent flags for the root command
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	return rootCmd
}

// openLedger wires Config, Logger, Store and Ledger into params.
func openLedger(cmd *cobra.Command, params *CmdParams) error {
	cfg, logger, err := internal.Init(cfgFile)
	if err != nil {
		return err
	}
	params.Config = cfg
	params.Logger = logger

	if err := AcquireLedgerLock(cfg.Storage.Path); err != nil {
		return err
	}

	store, err := adapters.NewLedgerStore(cfg)
	if err != nil {
		ReleaseLedgerLock(cfg.Storage.Path)
		return err
	}
	accounts, err := store.Load(cmd.Context())
	if err != nil {
		store.Close()
		ReleaseLedgerLock(cfg.Storage.Path)
		return err
	}
	led, err := ledger.New(accounts, logger)
	if err != nil {
		store.Close()
		ReleaseLedgerLock(cfg.Storage.Path)
		return err
	}
	params.Store = store
	params.Ledger = led

	logger.Debug("ledger loaded",
		"driver", cfg.Storage.Driver,
		"path", cfg.Storage.Path,
		"accounts", len(accounts),
	)
	return nil
}

// saveLedger persists the ledger wholesale and closes the store.
func saveLedger(cmd *cobra.Command, params *CmdParams) error {
	if params.Store == nil {
		return nil
	}

	saveErr := params.Store.Save(cmd.Context(), params.Ledger.Accounts())
	closeErr := params.Store.Close()
	ReleaseLedgerLock(params.Config.Storage.Path)
	if saveErr != nil {
		return saveErr
	}
	if closeErr != nil {
		return closeErr
	}

	params.Logger.Debug("ledger saved", "path", params.Config.Storage.Path)
	return nil
}
