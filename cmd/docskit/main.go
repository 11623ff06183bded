// Command docskit renders component documentation pages.
package main

import (
	"os"

	"github.com/go-drift/docskit/cmd/docskit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
