// Package main is the entry point for the srm session client.
package main

import (
	"github.com/RichMan125/srm-ui/cmd"
)

func main() {
	cmd.Execute()
}
