package main

import "go-algos/cli"

func main() {
	cli.Main()
}
