/*
Package svgico converts a single vector or raster image into a multi resolution
Windows icon (ICO) file, rendering the source at every requested pixel size and
packing the results into one icon directory.

The package provides a command line interface, supporting various flags for the
conversion. To check the supported commands type:

	$ svg-to-ico --help

In case you wish to integrate the API in a self constructed environment here is
a simple example:

	package main

	import (
		"log"
		"os"

		svgico "github.com/Ortham/svg-to-ico"
	)

	func main() {
		in, _ := os.Open("icon.svg")
		out, _ := os.Create("icon.ico")

		p := &svgico.Processor{
			Sizes: []uint{16, 32, 48, 256},
		}

		if err := p.Process(in, out); err != nil {
			log.Fatalf("error converting the image: %s", err)
		}
	}
*/
package svgico
