// Gitwrapped turns a year of Git history into summary cards.
package main

import (
	"github.com/huangsam/gitwrapped/cmd"
	"github.com/huangsam/gitwrapped/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error", err)
	}
}
