package main

import (
	"github.com/pfrederiksen/olympic-medals/internal/cli"
)

func main() {
	cli.Execute()
}
