package imaging

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ppmMagic    = "P3"
	ppmMaxValue = 255
	ppmComment  = "# Created by image-processor"
)

// DecodePPM reads a plain-text (P3) PPM image.
//
// Lines whose first non-blank character is '#' are comments and are dropped
// before tokenizing. The header is "P3 width height maxValue"; only a
// maxValue of 255 is accepted. The body is width*height*3 integers in
// row-major red, green, blue order.
func DecodePPM(r io.Reader) (*Image, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading PPM data: %v", ErrInvalidArgument, err)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: invalid PPM file: file is empty", ErrInvalidArgument)
	}
	if tokens[0] != ppmMagic {
		return nil, fmt.Errorf("%w: invalid PPM file: plain file should begin with %s", ErrInvalidArgument, ppmMagic)
	}

	next := tokenReader(tokens[1:])
	width, err := next("width")
	if err != nil {
		return nil, err
	}
	height, err := next("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := next("maximum value")
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: invalid PPM file: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	if maxValue != ppmMaxValue {
		return nil, fmt.Errorf("%w: invalid PPM file: maximum value of a color should be %d, got %d",
			ErrInvalidArgument, ppmMaxValue, maxValue)
	}
	// The header must not promise more pixels than the body holds.
	values := len(tokens) - 4
	if width > values/3 || height > values/3/width {
		return nil, fmt.Errorf("%w: invalid PPM file: header declares %dx%d pixels but only %d color values follow",
			ErrInvalidArgument, width, height, values)
	}

	grid := make([][]Pixel, height)
	for row := range grid {
		grid[row] = make([]Pixel, width)
		for col := range grid[row] {
			var rgb [3]uint8
			for c := range rgb {
				v, err := next("color value")
				if err != nil {
					return nil, err
				}
				if v < 0 || v > ppmMaxValue {
					return nil, fmt.Errorf("%w: invalid PPM file: color value %d at (%d,%d) outside 0-%d",
						ErrInvalidArgument, v, row, col, ppmMaxValue)
				}
				rgb[c] = uint8(v)
			}
			grid[row][col] = Pixel{R: rgb[0], G: rgb[1], B: rgb[2]}
		}
	}

	return New(grid)
}

// tokenReader returns a function that parses successive integer tokens.
func tokenReader(tokens []string) func(what string) (int, error) {
	pos := 0
	return func(what string) (int, error) {
		if pos >= len(tokens) {
			return 0, fmt.Errorf("%w: invalid PPM file: unexpected end of data reading %s", ErrInvalidArgument, what)
		}
		tok := tokens[pos]
		pos++
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid PPM file: %s %q is not an integer", ErrInvalidArgument, what, tok)
		}
		return v, nil
	}
}

// EncodePPM writes img as a plain-text (P3) PPM with one channel value per line.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ppmMagic)
	fmt.Fprintln(bw, ppmComment)
	fmt.Fprintf(bw, "%d %d\n", img.width, img.height)
	fmt.Fprintln(bw, ppmMaxValue)
	for _, p := range img.pix {
		fmt.Fprintf(bw, "%d\n%d\n%d\n", p.R, p.G, p.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing PPM data: %v", ErrInvalidArgument, err)
	}
	return nil
}
