package main

import "github.com/hevy-tools/hevyctl/cmd"

func main() {
	cmd.Execute()
}
