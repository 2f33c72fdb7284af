package main

import "github.com/hasbyte1/go-underscore/internal/cli"

// set by LDFLAGS at compile time
var gitVersion = "dev"

func main() {
	cli.Execute(gitVersion)
}
