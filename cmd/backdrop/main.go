package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"gioui.org/app"
	"github.com/esimov/backdrop"
	"github.com/esimov/backdrop/utils"
)

const HelpBanner = `
┌┐ ┌─┐┌─┐┬┌─┌┬┐┬─┐┌─┐┌─┐
├┴┐├─┤│  ├┴┐ ││├┬┘│ │├─┘
└─┘┴ ┴└─┘┴ ┴─┴┘┴└─└─┘┴

Background color compositing tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	bgColor     = flag.String("color", "#000000", "Background color as a hex string")
	blendMode   = flag.String("mode", backdrop.Normal, "Blend mode (normal, darken, lighten, multiply, screen, overlay, difference, exclusion)")
	opacity     = flag.Float64("opacity", 1.0, "Background color opacity in the [0, 1] range")
	rectX       = flag.Int("x", 0, "Target rectangle X origin")
	rectY       = flag.Int("y", 0, "Target rectangle Y origin")
	rectWidth   = flag.Int("width", 0, "Target rectangle width (0 = full image)")
	rectHeight  = flag.Int("height", 0, "Target rectangle height (0 = full image)")
	newWidth    = flag.Int("swidth", 0, "Rescale the source image to the provided width")
	newHeight   = flag.Int("sheight", 0, "Rescale the source image to the provided height")
	preview     = flag.Bool("preview", false, "Show the composited image in a preview window")
	conc        = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *opacity < 0 || *opacity > 1 {
		log.Fatal(utils.DecorateText("The opacity should be in the [0, 1] range!", utils.ErrorMessage))
	}

	proc := &backdrop.Processor{
		BgColor:   *bgColor,
		BlendMode: *blendMode,
		Opacity:   *opacity,
		X:         *rectX,
		Y:         *rectY,
		Width:     *rectWidth,
		Height:    *rectHeight,
		NewWidth:  *newWidth,
		NewHeight: *newHeight,
		Preview:   *preview,
	}

	op := &backdrop.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *conc,
	}

	// The Gio event loop has to run on the main OS thread, so in preview
	// mode the processing moves to a separate goroutine.
	if *preview {
		go func() {
			proc.Execute(op)
			os.Exit(0)
		}()
		app.Main()
	} else {
		proc.Execute(op)
	}
}
