package main

import (
	"os"

	"sread/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
