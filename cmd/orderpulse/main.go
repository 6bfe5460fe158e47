// main is the entry point for the orderpulse CLI.
package main

import (
	"github.com/huangsam/orderpulse/cmd"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/iocache"
	"github.com/huangsam/orderpulse/internal/logger"
)

func main() {
	err := cmd.Execute()

	iocache.CloseStores()
	_ = logger.Sync()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}

	if err != nil {
		contract.LogFatal("Error", err)
	}
}
