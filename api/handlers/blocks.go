package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tallychain/blockchain"
	"tallychain/blockchain/store"
)

func blockParam(c *gin.Context, chainStore store.ChainStore) (blockchain.Block, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return blockchain.Block{}, false
	}

	block, err := chainStore.BlockByIndex(index)
	if err != nil {
		if errors.Is(err, store.ErrBlockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return blockchain.Block{}, false
	}
	return block, true
}

// GetBlockByIndex returns the block at the given chain position.
func GetBlockByIndex(chainStore store.ChainStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		block, ok := blockParam(c, chainStore)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, block)
	}
}

// GetBlockEncoding returns the canonical payload serialization used as the
// block's hash input, so a display layer can show exactly what was hashed.
func GetBlockEncoding(chainStore store.ChainStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		block, ok := blockParam(c, chainStore)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"index":    block.Index,
			"encoding": blockchain.SerializePayload(block.Payload),
		})
	}
}
