package main

import (
	"os"

	"github.com/clinicaortiz/clinica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
