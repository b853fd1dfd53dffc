package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the documents in the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := openStore()
		if err != nil {
			return err
		}

		selectors, err := ds.List()
		if err != nil {
			return err
		}
		for _, s := range selectors {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
