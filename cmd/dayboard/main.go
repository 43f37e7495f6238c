// Command dayboard is a local-first personal task tracker organizing
// todos into day columns and a backlog.
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dayboard:", err)
		if types.IsClientError(err) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
