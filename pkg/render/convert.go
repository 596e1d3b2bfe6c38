package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const converter = "rsvg-convert"

// ErrNoConverter is returned when rsvg-convert cannot be found on PATH.
var ErrNoConverter = errors.New(converter + " not found (install librsvg, e.g. librsvg2-bin)")

// ToPDF converts a schema diagram from SVG to a single-page PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG rasterises a schema diagram. scale multiplies the SVG's intrinsic
// size; values <= 0 are treated as 1.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "png", "--zoom", fmt.Sprintf("%.2f", scale))
}

// Available reports whether PDF and PNG output can be produced.
func Available() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

func convert(ctx context.Context, svg []byte, format string, args ...string) ([]byte, error) {
	if !Available() {
		return nil, fmt.Errorf("%s output: %w", format, ErrNoConverter)
	}

	cmd := exec.CommandContext(ctx, converter, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("convert diagram to %s: %w: %s", format, err, msg)
		}
		return nil, fmt.Errorf("convert diagram to %s: %w", format, err)
	}
	return stdout.Bytes(), nil
}
