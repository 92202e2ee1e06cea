package main

import "github.com/robertdamiano/llm-metascore/cmd"

func main() {
	cmd.Execute()
}
