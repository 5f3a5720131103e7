package main

import (
	"os"

	"awiese/finance-master/cmd/categories"
	"awiese/finance-master/cmd/reclassify"
	"awiese/finance-master/cmd/root"
	"awiese/finance-master/cmd/run"
	"awiese/finance-master/cmd/totals"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(run.Cmd)
	root.Cmd.AddCommand(totals.Cmd)
	root.Cmd.AddCommand(reclassify.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
