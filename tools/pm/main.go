package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/tools/pm/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
