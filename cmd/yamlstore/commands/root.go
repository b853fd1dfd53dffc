package commands

import (
	"github.com/spf13/cobra"

	"github.com/agentic-research/yamlstore"
)

var (
	storeRoot    string
	formatOutput string
)

var rootCmd = &cobra.Command{
	Use:   "yamlstore",
	Short: "Query a directory of YAML documents by keypath",
	Long: `yamlstore - query a directory of YAML documents as one addressable store.

A keypath is a dot-separated path: the first component names a document by
file stem, the remaining components navigate into it (mapping keys or
sequence indexes, decided by the node they are applied to).

Examples:
  yamlstore get complete.nested.value --root ./config
  yamlstore get complete.tags.1 --root ./config --format json
  yamlstore ls --root ./config`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeRoot, "root", ".", "store root directory")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "yaml", "output format (yaml|json)")
}

func openStore() (*yamlstore.Datastore, error) {
	return yamlstore.Open(storeRoot)
}
