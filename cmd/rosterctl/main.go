package main

import "github.com/gradecraft/rosterctl/cmd/rosterctl/cmd"

func main() {
	cmd.Execute()
}
