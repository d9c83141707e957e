package cli

import "github.com/spf13/cobra"

// Version é preenchida no build via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("docfacil %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
