package main

import (
	"os"

	"github.com/jsonbankio/jsonbank-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
