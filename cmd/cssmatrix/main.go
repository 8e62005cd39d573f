package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/cssmatrix"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

type settings struct {
	logLevel string
	width    int
	height   int
	boxSize  float64
}

func main() {
	app := kingpin.New("cssmatrix", "Evaluate CSS transform lists")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error)").Envar("CSSMATRIX_LOG_LEVEL").Default("warning").StringVar(&s.logLevel)

	eval := app.Command("eval", "Print the matrix for one or more transform lists").Default()
	var (
		sources = eval.Arg("transform", "CSS transform list, e.g. 'rotate(45deg) scale(2)'").Strings()
		file    = eval.Flag("file", "Read transform lists from a file, one per line").Short('f').String()
		asArray = eval.Flag("array", "Print the 16 matrix components").Short('a').Bool()
		as2D    = eval.Flag("2d", "With --array, print only the six 2D values").Bool()
	)

	point := app.Command("point", "Transform a point")
	var (
		pointSource = point.Arg("transform", "CSS transform list").Required().String()
		coords      = point.Arg("coords", "x y [z [w]]").Required().Float64List()
	)

	render := app.Command("render", "Draw a transform to PNG or PDF")
	var (
		renderSource = render.Arg("transform", "CSS transform list").Required().String()
		outPath      = render.Flag("output", "Output file, .png or .pdf").Short('o').Required().String()
		imagePath    = render.Flag("image", "Transform this PNG image instead of drawing the reference box").Short('i').ExistingFile()
	)
	render.Flag("width", "Canvas width").Default("400").IntVar(&s.width)
	render.Flag("height", "Canvas height").Default("400").IntVar(&s.height)
	render.Flag("box", "Edge length of the reference box").Default("100").Float64Var(&s.boxSize)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	cssmatrix.SetLogLevel(s.logLevel)

	var err error
	switch command {
	case "eval":
		err = doEval(s, *sources, *file, *asArray, *as2D)
	case "point":
		err = doPoint(s, *pointSource, *coords)
	case "render":
		err = doRender(s, *renderSource, *outPath, *imagePath)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
