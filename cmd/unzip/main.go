package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/emesic23/goflate/deflate"
	"github.com/emesic23/goflate/zipfile"
)

func main() {
	inputFile := flag.String("i", "", "input archive path")
	outputFile := flag.String("o", "", "output file for the extracted entry")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	archive, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	lf, err := zipfile.ReadSingleEntry(archive)
	if err != nil {
		log.Fatal(err)
	}

	var extracted []byte
	switch lf.CompMethod {
	case zipfile.MethodStored:
		extracted = lf.Data
	case zipfile.MethodDeflate:
		extracted, err = deflate.Decode(lf.Data)
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unsupported comp-method %d", lf.CompMethod)
	}

	err = ioutil.WriteFile(*outputFile, extracted, 0777)
	if err != nil {
		log.Fatal(err)
	}
}
