package main

import "github.com/philipp01105/csplog/internal/commands"

func main() {
	commands.Execute()
}
