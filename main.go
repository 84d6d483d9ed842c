package main

import (
	"os"

	"github.com/Adarsh-oo7/pscprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
