package main

import "github.com/notargets/goslepian/cmd"

func main() {
	cmd.Execute()
}
