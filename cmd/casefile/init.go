// Init command creates the data directory and an empty document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the record store",
	Long: `Init creates the data directory and an empty document if none exists.
Running it against an existing store is harmless.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{"document": store.Path()})
	}
	fmt.Printf("Store initialized at %s\n", store.Path())
	return nil
}
