// Command academyctl runs maintenance tasks against the academy database.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
