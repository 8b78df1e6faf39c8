package cmd

import (
	"wakeproxy/pkg/version"

	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:     "wakeproxy",
	Long:    "An HTTP relay waking a LAN machine with magic packets and relaying power off requests to it.",
	Version: version.String(),
}

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Show the version of wakeproxy.")
	rootCmd.AddCommand(&runCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
