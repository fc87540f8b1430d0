package main

import (
	"os"

	"github.com/gostonefire/coursecatalog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
