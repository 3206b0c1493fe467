package main

import (
	"fmt"
	"os"

	"github.com/jonathan/signature-studio/internal/types"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored design preferences",
	Long:  "Prints the effective design preferences. With --set, updates and saves them; with --reset, removes the preference file so the next load yields defaults.",
	RunE:  runPrefs,
}

var (
	prefsPath  string
	prefsSets  []string
	prefsReset bool
)

func init() {
	prefsCmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to the design preferences file")
	prefsCmd.Flags().StringArrayVar(&prefsSets, "set", nil, "Set a design option (key=value, repeatable)")
	prefsCmd.Flags().BoolVar(&prefsReset, "reset", false, "Remove the preference file")

	rootCmd.AddCommand(prefsCmd)
}

func runPrefs(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	store, err := resolvePrefsStore(prefsPath, cfg.PrefsPath)
	if err != nil {
		return err
	}

	if prefsReset {
		if len(prefsSets) > 0 {
			return fmt.Errorf("cannot use --reset with --set")
		}
		if err := store.Reset(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(os.Stdout, "Preferences reset to defaults")
		return nil
	}

	opts, err := store.Load()
	if err != nil {
		return err
	}

	if len(prefsSets) > 0 {
		if err := applySets(&opts, prefsSets); err != nil {
			return err
		}
		opts = opts.Normalized()
		if err := store.Save(opts); err != nil {
			return err
		}
	}

	for _, key := range types.OptionKeys {
		_, _ = fmt.Fprintf(os.Stdout, "%-16s %s\n", key, opts.Option(key))
	}
	return nil
}
