// Command s2p signs registration requests and exports the public keys used
// to verify them.
package main

import (
	"fmt"
	"os"

	"github.com/alexadamm/s2p-go/pkg/logs"
)

func main() {
	err := newRootCmd().Execute()
	logs.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
