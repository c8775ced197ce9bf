package document

import (
	"errors"
	"fmt"
	"strings"

	"printdrop/internal/pkg/errs"
)

// PaperSize is the sheet format a document is printed on.
type PaperSize string

const (
	A4     PaperSize = "A4"
	A3     PaperSize = "A3"
	Letter PaperSize = "Letter"
)

// ColorMode selects color or black and white printing.
type ColorMode string

const (
	Color      ColorMode = "color"
	BlackWhite ColorMode = "bw"
)

const defaultCopies = 1

// MaxCopies caps the copies of one document in one order.
const MaxCopies = 100

// PaperSizeFromString parses a paper size. The empty string yields A4.
func PaperSizeFromString(s string) (PaperSize, error) {
	if strings.TrimSpace(s) == "" {
		return A4, nil
	}

	for _, size := range []PaperSize{A4, A3, Letter} {
		if strings.EqualFold(s, string(size)) {
			return size, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not one of A4, A3, Letter", s))
}

// Validate reports whether the paper size is supported.
func (p PaperSize) Validate() error {
	switch p {
	case A4, A3, Letter:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid paper size", string(p)))
	}
}

// ColorModeFromString parses a color mode. The empty string yields BlackWhite.
func ColorModeFromString(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", BlackWhite:
		return BlackWhite, nil
	case Color:
		return Color, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("colorType", fmt.Errorf("%q is not one of color, bw", s))
	}
}

// Validate reports whether the color mode is supported.
func (c ColorMode) Validate() error {
	if c != Color && c != BlackWhite {
		return errs.NewValueIsInvalidErrorWithCause("colorType", fmt.Errorf("%q is not a valid color mode", string(c)))
	}
	return nil
}

// PrintOptions is the immutable set of options a document is printed with.
type PrintOptions struct {
	size    PaperSize
	color   ColorMode
	binding bool
	copies  int
}

// NewPrintOptions validates and combines the print options.
func NewPrintOptions(size PaperSize, color ColorMode, binding bool, copies int) (PrintOptions, error) {
	if err := errors.Join(
		size.Validate(),
		color.Validate(),
		validateCopies(copies),
	); err != nil {
		return PrintOptions{}, err
	}

	return PrintOptions{
		size:    size,
		color:   color,
		binding: binding,
		copies:  copies,
	}, nil
}

// DefaultPrintOptions returns A4, black and white, no binding, one copy.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{size: A4, color: BlackWhite, copies: defaultCopies}
}

func (o PrintOptions) Size() PaperSize {
	return o.size
}

func (o PrintOptions) Color() ColorMode {
	return o.color
}

func (o PrintOptions) Binding() bool {
	return o.binding
}

func (o PrintOptions) Copies() int {
	return o.copies
}

func validateCopies(copies int) error {
	if copies < 1 {
		return errs.NewValueIsInvalidErrorWithCause("copies", fmt.Errorf("%d is not greater than 0", copies))
	}
	if copies > MaxCopies {
		return errs.NewValueIsOutOfRangeError("copies", copies, 1, MaxCopies)
	}
	return nil
}
