package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentic-research/yamlstore"
)

var getCmd = &cobra.Command{
	Use:   "get <keypath>",
	Short: "Resolve a keypath and print the value",
	Long: `Resolve a keypath against the store and print the resolved value.

Examples:
  yamlstore get complete.nested.value
  yamlstore get complete.tags.1 --root ./config
  yamlstore get complete --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := openStore()
		if err != nil {
			return err
		}

		value, err := yamlstore.Get[any](ds, args[0])
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		if formatOutput == "json" {
			if data, err = yaml.YAMLToJSON(data); err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
