/*
Package backdrop applies a uniform background color over a rectangular region
of an image, compositing it underneath the existing pixel content through a
configurable blend mode. The affected region is clamped to the image bounds
and the rows are processed in parallel.

The package provides a command line interface, supporting various flags for
the different fill and compositing options. To check the supported commands type:

	$ backdrop --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/backdrop"
	)

	func main() {
		p := &backdrop.Processor{
			BgColor: "#2e86de",
			Opacity: 0.5,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error processing the image: %s", err.Error())
		}
	}
*/
package backdrop
