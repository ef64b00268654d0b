package main

import "github.com/KaramelBytes/gapmap-cli/cmd"

func main() {
	cmd.Execute()
}
