package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/emesic23/goflate/deflate"
	"github.com/emesic23/goflate/zipfile"
)

func main() {
	inputFile := flag.String("i", "", "input file to compress")
	outputFile := flag.String("o", "", "output archive path")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	input, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	compressed, err := deflate.EncodeLZ77(input)
	if err != nil {
		log.Fatal(err)
	}
	name := filepath.Base(*inputFile)
	archive := zipfile.WriteSingleEntry(zipfile.MethodDeflate, name, compressed, uint32(len(input)))

	err = ioutil.WriteFile(*outputFile, archive, 0777)
	if err != nil {
		log.Fatal(err)
	}
}
