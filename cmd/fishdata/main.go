package main

import "github.com/rtreharne/fishdata/internal/cli"

func main() {
	cli.Execute()
}
