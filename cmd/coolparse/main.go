package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pattyshack/coolparse/cmd/coolparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrHalted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
