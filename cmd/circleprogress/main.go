// Circleprogress shows circular progress bars that can be set by
// dragging around the ring.
//
// Usage: circleprogress [-c config.yaml] [-v] [--log-file path]
// Quit with DEL key.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
