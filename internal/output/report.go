package output

import (
	"fmt"
	"io"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// GenerateReport renders report in the named format to w.
func GenerateReport(w io.Writer, report *domain.SalaryReport, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport writes report to timestamped files in dir and returns their paths.
// The format "all" writes one file per registered formatter.
func SaveReport(report *domain.SalaryReport, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = builtInFormatters
	} else {
		f, err := ResolveFormatter(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	var paths []string
	for _, f := range formatters {
		path, err := WriteFormatted(f, report, dir)
		if err != nil {
			return paths, fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
