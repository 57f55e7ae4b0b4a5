package dwgsvg

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-dwg/dwgsvg/dwgmodel"
)

// Loader is the injected parser boundary (§6): this package renders an
// already-loaded Model but never parses a DWG file itself.
type Loader interface {
	Load(dwgPath string) (dwgmodel.Model, error)
}

// Render streams model as an SVG document to w, the Go analog of the
// source's data_to_svg generalized from a fixed buffer to any
// io.Writer (§6).
func Render(w io.Writer, model dwgmodel.Model, opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrOutOfMem, r)
		}
	}()

	if verr := validateModel(model); verr != nil {
		return verr
	}

	var log *slog.Logger
	if opts.Verbose {
		log = slog.Default()
	}
	c := newRenderContext(model, opts, log)

	if writeErr := render(model, opts, c, w); writeErr != nil {
		return fmt.Errorf("%w: %v", ErrIOError, writeErr)
	}
	return nil
}

// RenderBytes renders model into an owned byte slice, the Go analog of
// the source's buffer-returning data_to_svg form. There is no
// free_svg analog: the returned slice is retired by the garbage
// collector like any other Go value (§6).
func RenderBytes(model dwgmodel.Model, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, model, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile loads dwgPath through loader and renders it to bytes, the
// Go analog of the source's to_svg.
func RenderFile(loader Loader, dwgPath string, opts Options) ([]byte, error) {
	model, err := loader.Load(dwgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDWG, err)
	}
	return RenderBytes(model, opts)
}

// WriteFile loads dwgPath through loader and renders it directly to
// svgPath, the Go analog of the source's write_svg.
func WriteFile(loader Loader, dwgPath, svgPath string, opts Options) error {
	model, err := loader.Load(dwgPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDWG, err)
	}
	f, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	return Render(f, model, opts)
}
