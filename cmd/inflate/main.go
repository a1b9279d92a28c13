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
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	input, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := deflate.Decode(input)
	if err != nil {
		log.Fatal(err)
	}

	err = ioutil.WriteFile(*outputFile, decoded, 0777)
	if err != nil {
		log.Fatal(err)
	}
}
