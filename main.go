package main

import "github.com/mintsh/mintsh/cmd"

func main() {
	cmd.Execute()
}
