package main

import (
	"os"

	"ngrom/cli"
)

func main() {
	os.Exit(cli.Start())
}
