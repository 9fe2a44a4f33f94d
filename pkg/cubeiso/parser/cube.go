// Package parser reads Gaussian cube files into cubeiso models.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

// ParseError indicates a required header field or grid token is missing or
// malformed.
type ParseError struct {
	// Field names the header field or section that failed.
	Field string
	// Token is the offending token, if one was isolated.
	Token string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cube parse error: %s", e.Field)
	if e.Token != "" {
		msg += fmt.Sprintf(" (token %q)", e.Token)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CountMismatchError indicates the grid section held a different number of
// values than the header dimensions promise.
type CountMismatchError struct {
	// Actual is the number of grid values read.
	Actual int
	// Expected is Dims[0]*Dims[1]*Dims[2].
	Expected int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("cube grid has %d values, expected %d", e.Actual, e.Expected)
}

// ParseFile opens and parses a cube file.
func ParseFile(path string) (*models.Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cube file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a cube file from r. It returns the header and the full grid,
// or an error; no partial cube is ever returned.
//
// Layout expected:
//
//	line 1-2:  comments (vendor, data kind, and unit keywords live here)
//	line 3:    numAtoms originX originY originZ
//	line 4-6:  voxelCount axisX axisY axisZ (one per grid axis)
//	next |numAtoms| lines: atom records, skipped
//	ORCA only: one extra header line, skipped
//	remainder: whitespace-separated grid values, count = n1*n2*n3
func Parse(r io.Reader) (*models.Cube, error) {
	br := bufio.NewReader(r)

	var h models.Header

	c1, err := readLine(br)
	if err != nil {
		return nil, &ParseError{Field: "comment line 1", Err: err}
	}
	c2, err := readLine(br)
	if err != nil {
		return nil, &ParseError{Field: "comment line 2", Err: err}
	}
	h.Comment1 = strings.TrimSpace(c1)
	h.Comment2 = strings.TrimSpace(c2)

	h.CalcType = detectCalcType(h.Comment1, h.Comment2)
	h.IsOrbital = detectOrbital(h.Comment1, h.Comment2)

	if err := parseAtomLine(br, &h); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if err := parseAxisLine(br, &h, i); err != nil {
			return nil, err
		}
	}

	// Atom records carry coordinates the integration never uses. A negative
	// atom count is a format flag, not a negative number of lines.
	numAtoms := h.NumAtoms
	if numAtoms < 0 {
		numAtoms = -numAtoms
	}
	for i := 0; i < numAtoms; i++ {
		if _, err := readLine(br); err != nil {
			// A truncated atom block shows up as a grid count mismatch
			// below, matching how the format is validated overall.
			break
		}
	}

	// ORCA writes one extra row (MO metadata) before the grid.
	if h.CalcType == models.CalcORCA {
		_, _ = readLine(br)
	}

	values, err := parseGrid(br, h.NumPoints())
	if err != nil {
		return nil, err
	}

	return &models.Cube{Header: h, Values: values}, nil
}

// readLine returns the next line without its terminator. A final unterminated
// line is returned with no error; err is io.EOF only when nothing was read.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseAtomLine(br *bufio.Reader, h *models.Header) error {
	line, err := readLine(br)
	if err != nil {
		return &ParseError{Field: "atom count and origin", Err: err}
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return &ParseError{Field: "atom count and origin", Token: line}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return &ParseError{Field: "atom count", Token: fields[0], Err: err}
	}
	h.NumAtoms = n
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return &ParseError{Field: "origin", Token: fields[i+1], Err: err}
		}
		h.Origin[i] = v
	}
	return nil
}

func parseAxisLine(br *bufio.Reader, h *models.Header, axis int) error {
	field := fmt.Sprintf("axis vector %d", axis)
	line, err := readLine(br)
	if err != nil {
		return &ParseError{Field: field, Err: err}
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return &ParseError{Field: field, Token: line}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return &ParseError{Field: field, Token: fields[0], Err: err}
	}
	h.Dims[axis] = n
	// The count is duplicated into the axis row for format fidelity.
	h.AxisVectors[axis][0] = float64(n)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return &ParseError{Field: field, Token: fields[i+1], Err: err}
		}
		h.AxisVectors[axis][i+1] = v
	}
	return nil
}

// parseGrid consumes the rest of the input as whitespace-separated values and
// validates the count against the header dimensions.
func parseGrid(br *bufio.Reader, expected int) ([]float64, error) {
	values := make([]float64, 0, expected)
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, &ParseError{Field: "grid value", Token: sc.Text(), Err: err}
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading grid values: %w", err)
	}
	if len(values) != expected {
		return nil, &CountMismatchError{Actual: len(values), Expected: expected}
	}
	return values, nil
}
