// cmd/mission-manager/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "mission-manager",
	Short: "Design mission service",
	Long:  `Selects and customizes website templates for business missions, batching non-urgent work and broadcasting progress events.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (defaults to configs/config.yaml)")
}
