package main

import (
	"github.com/sofadb/sofa-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
