package main

import "github.com/arinkulshi/diet-recommendation-tool/cmd/commands"

func main() {
	commands.Execute()
}
