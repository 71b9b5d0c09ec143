package main

import (
	"github.com/sakha-ai/sakha-tui/cmd"
)

func main() {
	cmd.Execute()
}
