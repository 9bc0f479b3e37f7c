// Package output prints check results and file contents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/slurp/pkg/check"
	"github.com/vertti/slurp/pkg/reader"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"

	// Used for writes to Printer.Err, which may be redirected apart from stdout.
	errRed   = "\033[31m"
	errReset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
	if !supportscolor.Stderr().SupportsColor {
		errRed, errReset = "", ""
	}
}

// Format selects how results are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// Printer writes results to Out and failures of plain reads to Err.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Format Format
}

type jsonResult struct {
	Name    string                `json:"name"`
	Status  check.Status          `json:"status"`
	Details []string              `json:"details"`
	Code    errors.ErrorCode      `json:"code,omitempty"`
	Error   *errors.ErrorResponse `json:"error,omitempty"`
}

// PrintResult outputs a check result.
func (p *Printer) PrintResult(r check.Result) error {
	if p.Format == FormatJSON {
		details := r.Details
		if details == nil {
			details = []string{}
		}
		return p.encode(p.Out, jsonResult{
			Name:    r.Name,
			Status:  r.Status,
			Details: details,
			Code:    r.Code(),
			Error:   errors.ToJSON(r.Err),
		})
	}

	if r.OK() {
		fmt.Fprintf(p.Out, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(p.Out, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(p.Out, "      %s\n", formatLabel(d))
	}
	return nil
}

// PrintContents writes file contents verbatim, or as {"path", "contents"} in JSON.
func (p *Printer) PrintContents(path, contents string) error {
	if p.Format == FormatJSON {
		return p.encode(p.Out, struct {
			Path     string `json:"path"`
			Contents string `json:"contents"`
		}{path, contents})
	}
	_, err := io.WriteString(p.Out, contents)
	return err
}

// PrintReadError reports a failed read, naming its kind.
func (p *Printer) PrintReadError(err error) error {
	if p.Format == FormatJSON {
		return p.encode(p.Err, struct {
			Kind  reader.Kind           `json:"kind"`
			Error *errors.ErrorResponse `json:"error"`
		}{reader.KindOf(err), errors.ToJSON(err)})
	}
	_, werr := fmt.Fprintf(p.Err, "slurp: %s%s%s: %v\n", errRed, reader.KindOf(err), errReset, err)
	return werr
}

func (p *Printer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
