package main

import "github.com/piezotools/gopiez/cmd"

func main() {
	cmd.Execute()
}
