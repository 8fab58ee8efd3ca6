package main

import (
	"fmt"
	"os"

	"github.com/Math-l7/scheduling-modular-api/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
