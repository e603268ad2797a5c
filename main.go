// Fonts CLI - Google Fonts comparison helpers
package main

import "github.com/joeblew999/plat-fonts/internal/cli"

func main() {
	cli.Execute()
}
