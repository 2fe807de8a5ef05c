package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	arrowc "github.com/rajat1saxena/babel-sorta-arrow-compiler/pkg"
)

func main() {
	emitIR := flag.Bool("ll", false, "emit LLVM IR instead of the target syntax")
	flag.Parse()

	source, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := arrowc.NewCompiler()

	var out string
	if *emitIR {
		out, err = c.CompileIR(source)
	} else {
		out, err = c.CompileString(source)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}

func readSource(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
