package main

import (
	"fmt"
	"os"
)

func main() {
	e := newEnv(os.Stdout, os.Stderr)
	err := newRootCmd(e).Execute()
	e.closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorpick: %v\n", err)
		os.Exit(1)
	}
}
