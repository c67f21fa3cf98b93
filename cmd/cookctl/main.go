package main

import (
	"github.com/devdonalds/cookbook/pkg/cli"
)

func main() {
	cli.Execute()
}
