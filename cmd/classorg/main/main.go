package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/classorg/cmd/classorg"
	"github.com/arthur-debert/classorg/pkg/ui/styles"
)

func main() {
	rootCmd := classorg.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
