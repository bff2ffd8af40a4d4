package main

import "github.com/meshforge/blocksmoother/cmd"

func main() {
	cmd.Execute()
}
