package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/emesic23/goflate/deflate"
)

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	literalsOnly := flag.Bool("literals-only", false, "skip LZ77 matching and emit fixed-Huffman literals only")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	input, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	var encoded []byte
	if *literalsOnly {
		encoded, err = deflate.EncodeLiterals(input)
	} else {
		encoded, err = deflate.EncodeLZ77(input)
	}
	if err != nil {
		log.Fatal(err)
	}

	err = ioutil.WriteFile(*outputFile, encoded, 0777)
	if err != nil {
		log.Fatal(err)
	}
}
