package main

import (
	"fmt"
	"os"

	"github.com/esimov/m3/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText("✘ "+err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}
