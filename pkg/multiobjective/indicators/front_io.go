package indicators

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// ReadFront parses a numeric matrix where every non-empty line is a point and
// columns are objective values separated by whitespace and/or commas. Lines
// starting with '#' are ignored. All rows must have the same length.
func ReadFront(r io.Reader) ([][]float64, error) {
	var points [][]float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
		point := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			point[i] = v
		}
		if len(points) > 0 && len(point) != len(points[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", framework.ErrInvalidCondition, line, len(point), len(points[0]))
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadFrontFile reads a front stored with the layout accepted by ReadFront.
func ReadFrontFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadFront(f)
	if err != nil {
		return nil, fmt.Errorf("read front %s: %w", path, err)
	}
	return points, nil
}
