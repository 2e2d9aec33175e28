package main

import (
	"github.com/spf13/cobra"

	"tallychain/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:          "tallychain",
	Short:        "Minimal append-only, hash-linked ledger",
	Long:         "tallychain keeps an in-memory chain of transfer records, each block cryptographically bound to its predecessor, and can re-verify the whole chain at any time.",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to a rotating file instead of the console")
	flags.StringVar(&cfg.NTPServer, "ntp-server", cfg.NTPServer, "sync timestamps against this NTP server instead of the system clock")
	flags.DurationVar(&cfg.NTPSyncInterval, "ntp-sync-interval", cfg.NTPSyncInterval, "how often to refresh the NTP offset")

	rootCmd.AddCommand(serveCmd, formCmd)
}
