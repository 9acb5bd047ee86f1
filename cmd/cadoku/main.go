package main

import "svw.info/cadoku/internal/cli"

func main() {
	cli.Execute()
}
