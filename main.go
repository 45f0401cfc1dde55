package main

import "github.com/jansmrcka/teabook/cmd"

func main() {
	cmd.Execute()
}
