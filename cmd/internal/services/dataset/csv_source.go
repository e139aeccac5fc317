package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const DefaultCSVSeparator = ';'

// CSVSource читает справочник из CSV с заголовком в первой строке.
type CSVSource struct {
	path      string
	reader    io.Reader
	separator rune
}

// NewCSVSource создаёт источник для файла. Пустой разделитель означает ';'.
func NewCSVSource(path string, separator string) *CSVSource {
	return &CSVSource{path: path, separator: parseSeparator(separator)}
}

// NewCSVReaderSource создаёт источник поверх уже открытого потока (тесты, встроенные данные).
func NewCSVReaderSource(r io.Reader, separator string) *CSVSource {
	return &CSVSource{reader: r, separator: parseSeparator(separator)}
}

func parseSeparator(s string) rune {
	if s == "" {
		return DefaultCSVSeparator
	}
	if s == `\t` {
		return '\t'
	}
	return []rune(s)[0]
}

func (s *CSVSource) Records(ctx context.Context) ([]Record, error) {
	r := s.reader
	if r == nil {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть файл справочника %s: %w", s.path, err)
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.Comma = s.separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("не удалось прочитать заголовок CSV: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records []Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения CSV: %w", err)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) && name != "" {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
