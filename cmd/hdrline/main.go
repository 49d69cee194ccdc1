package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/cmd/hdrline/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
