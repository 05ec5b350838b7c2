package main

import "itemctl/internal/cli"

func main() {
	cli.Execute()
}
