package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tallychain/blockchain"
	"tallychain/blockchain/store"
	"tallychain/clock"
)

type recordRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

// AppendRecord handles a submitted record: the payload is validated and
// canonicalized at this boundary, stamped from the clock source, and
// appended to the session's chain.
func AppendRecord(chainStore store.ChainStore, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		payload, err := blockchain.NewPayload(req.Sender, req.Receiver, req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		block, err := chainStore.Append(payload, clock.Timestamp(clk.Now()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, block)
	}
}
