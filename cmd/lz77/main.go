package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/emesic23/goflate/lz77"
)

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	input, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	tokens := lz77.Tokenize(input)
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.IsLiteral() {
			fmt.Fprintf(&sb, "lit %q\n", tok.Literal)
			continue
		}
		fmt.Fprintf(&sb, "ref len=%d dist=%d\n", tok.Length, tok.Distance)
	}

	err = ioutil.WriteFile(*outputFile, []byte(sb.String()), 0777)
	if err != nil {
		log.Fatal(err)
	}
}
