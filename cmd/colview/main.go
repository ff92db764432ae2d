package main

import (
	"os"

	"github.com/kyaoi/colview/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
