package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akeil/cssmatrix"
	"github.com/akeil/cssmatrix/pkg/render"
)

func doRender(s settings, source, outPath, imagePath string) error {
	m, err := cssmatrix.FromString(source)
	if err != nil {
		return err
	}

	rc := render.DefaultContext()
	rc.Width = s.width
	rc.Height = s.height
	rc.BoxSize = s.boxSize

	var draw func(w io.Writer) error
	ext := strings.ToLower(filepath.Ext(outPath))
	switch {
	case imagePath != "" && ext == ".png":
		draw = func(w io.Writer) error {
			in, err := os.Open(imagePath)
			if err != nil {
				return err
			}
			defer in.Close()
			return render.TransformPNG(m, in, w)
		}
	case imagePath != "":
		return fmt.Errorf("transformed images can only be saved as PNG")
	case ext == ".png":
		draw = func(w io.Writer) error { return rc.PNG(m, w) }
	case ext == ".pdf":
		draw = func(w io.Writer) error { return rc.PDF(m, w) }
	default:
		return fmt.Errorf("unsupported output format %q, choose one of '.png', '.pdf'", ext)
	}

	fmt.Printf("%v render %q\n", ellipsis, source)
	f, err := os.Create(outPath)
	if err != nil {
		return cssmatrix.Wrap(err, "create %q", outPath)
	}
	defer f.Close()

	err = draw(f)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, source, err)
		return err
	}

	fmt.Printf("%v %v saved as %q.\n", checkmark, m, outPath)
	return nil
}
