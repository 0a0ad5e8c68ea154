package main

import (
	"fmt"
	"os"

	"github.com/superhawk610/ascii-blocks/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		cmd.RunConvert(nil)
		return
	}

	switch os.Args[1] {
	case "undo":
		cmd.RunUndo(os.Args[2:])
	case "--version":
		fmt.Println("ascii-blocks", version)
	default:
		cmd.RunConvert(os.Args[1:])
	}
}
