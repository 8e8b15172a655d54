package main

import (
	"fmt"
	"os"

	"github.com/Chebil-Ilef/Indexation-Lab1/cmd/indexlab/bench"
	"github.com/Chebil-Ilef/Indexation-Lab1/cmd/indexlab/build"
	"github.com/Chebil-Ilef/Indexation-Lab1/cmd/indexlab/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		build.Run(os.Args[2:])
	case "bench":
		bench.Run(os.Args[2:])
	case "version":
		version.Run()
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`indexlab - Inverted index construction, compression and maintenance

Usage:
  indexlab <command> [options]

Commands:
  build     Build an inverted index from a corpus
  bench     Compare sequential vs parallel builds and compression
  version   Print version information
  help      Show this help message

Run 'indexlab <command> --help' for more information on a command.`)
}
