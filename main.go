/*
Copyright © 2026 teddybear-cooking

*/
package main

import (
	"github.com/teddybear-cooking/spend-tracker/cmd"
)

func main() {
	cmd.Execute()
}
