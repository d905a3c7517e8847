package main

import (
	_ "time/tzdata"

	"Food-Inventory/cmd/cli"
)

func main() {
	cli.Execute()
}
