package main

import (
	"os"

	"github.com/gostonefire/memhashmap/cmd/memmapctl/command"
)

func main() {
	if err := command.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
