package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dostrap/cmd/dostrap"
	"github.com/arthur-debert/dostrap/pkg/ui/output/styles"
)

func main() {
	rootCmd := dostrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red; every fatal error names the package or
		// capability involved, so no further detail is needed here.
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
