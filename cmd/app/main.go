package main

import (
	"os"
	"github.com/swetha221234/smart-rural-connect/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
