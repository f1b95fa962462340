package main

import "github.com/evanluo/evos/internal/cli"

func main() {
	cli.Execute()
}
