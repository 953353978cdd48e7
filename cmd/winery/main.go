// Command winery is offline tooling for the winery catalog: resolving producer
// names, printing descriptions and auditing wine list exports.
//
// Usage:
//
//	winery lookup "Tenuta Ulisse" "Santa Tresa*"
//	winery describe "FEUDI BIZANTINI"
//	winery list
//	winery report --wines data/wines.json
//	winery producers --wines data/wines.json
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
