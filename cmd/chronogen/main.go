// Command chronogen generates, batches and verifies dual-timeline puzzle levels.
//
// Usage:
//
//	chronogen generate --width 12 --height 10 --difficulty 4 --obstacles
//	chronogen batch --count 100 --workers 8 --out-dir levels --metrics-addr :9100
//	chronogen verify levels/level-0001.json.zst
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
