package main

import (
	"os"

	"cadizaccesible/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
