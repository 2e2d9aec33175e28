package main

import (
	"github.com/spf13/cobra"

	"tallychain/api"
	"tallychain/blockchain"
	"tallychain/blockchain/store"
	"tallychain/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP ledger node",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})

		chainStore := store.NewMemoryChainStore()
		err := chainStore.Bus().Subscribe(store.TopicBlockAppended, func(b blockchain.Block) {
			logger.Info().
				Int("index", b.Index).
				Str("hash", b.Hash).
				Str("sender", b.Payload.Sender).
				Str("receiver", b.Payload.Receiver).
				Str("amount", b.Payload.Amount).
				Msg("block appended")
		})
		if err != nil {
			return err
		}

		logger.Info().
			Str("session", chainStore.SessionID()).
			Msg("chain initialized at genesis")

		server := api.NewServer(chainStore, cfg.Clock(), logger, cfg.HTTPPort)
		return server.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "HTTP API port")
}
