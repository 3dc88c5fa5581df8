package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbracken/fretwise/trainer"
)

func init() {
	rootCmd.AddCommand(topicsCmd)
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the practice topics",
	Long:  `Lists the practice topics with their indexes, for use with --topic.`,
	Run: func(cmd *cobra.Command, args []string) {
		for i, topic := range trainer.Catalog() {
			fmt.Printf("%2d  %s (%d notes)\n", i, topic.Name(), topic.Len())
		}
	},
}
