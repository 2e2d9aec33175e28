package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tallychain/blockchain"
	"tallychain/blockchain/store"
	"tallychain/clock"
)

const (
	actionAddRecord = "add record"
	actionShowChain = "show chain"
	actionValidate  = "validate chain"
	actionQuit      = "quit"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Record transfers interactively into a local chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		chainStore := store.NewMemoryChainStore()
		clk := cfg.Clock()

		pterm.DefaultHeader.WithFullWidth().Println("tallychain ledger")
		pterm.Info.Printfln("session %s, chain anchored at genesis", chainStore.SessionID())

		for {
			action, err := pterm.DefaultInteractiveSelect.
				WithDefaultText("What next?").
				WithOptions([]string{actionAddRecord, actionShowChain, actionValidate, actionQuit}).
				Show()
			if err != nil {
				return err
			}

			switch action {
			case actionAddRecord:
				addRecord(chainStore, clk)
			case actionShowChain:
				renderChain(chainStore.Chain())
			case actionValidate:
				if err := chainStore.Verify(); err != nil {
					pterm.Error.Printfln("chain is broken: %v", err)
				} else {
					pterm.Success.Println("chain is intact")
				}
			case actionQuit:
				return nil
			}
		}
	},
}

func addRecord(chainStore store.ChainStore, clk clock.Clock) {
	sender, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Sender").Show()
	receiver, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Receiver").Show()
	amount, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Amount").Show()

	payload, err := blockchain.NewPayload(sender, receiver, amount)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	block, err := chainStore.Append(payload, clock.Timestamp(clk.Now()))
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Success.Printfln("block %d appended (%s)", block.Index, shortHash(block.Hash))
}

func renderChain(chain blockchain.Chain) {
	rows := pterm.TableData{{"index", "timestamp", "sender", "receiver", "amount", "hash"}}
	for _, b := range chain {
		rows = append(rows, []string{
			strconv.Itoa(b.Index),
			b.Timestamp,
			b.Payload.Sender,
			b.Payload.Receiver,
			b.Payload.Amount,
			shortHash(b.Hash),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func shortHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12]
}
