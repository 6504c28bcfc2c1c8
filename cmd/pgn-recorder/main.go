package main

import (
	"fmt"
	"os"

	"github.com/park285/Cheese-PGN-recorder/internal/obslog"
)

func main() {
	err := RootCmd.Execute()
	obslog.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
