// Package csvfile читает и пишет плоские файлы с обязательной строкой заголовка.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// Row строка данных с номером строки в файле (1-based, заголовок = 1)
type Row struct {
	Line   int
	Fields []string
	index  map[string]int
}

// Get возвращает значение колонки по имени
func (r Row) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Table содержимое файла
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// ReadTable читает файл и проверяет, что заголовок совпадает с header
func ReadTable(path string, header []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	return Read(f, path, header)
}

// Read читает таблицу из r. name используется в сообщениях об ошибках.
func Read(r io.Reader, name string, header []string) (*Table, error) {
	reader := newReader(r, len(header))

	got, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	if err != nil {
		return nil, classifyReadError(name, err)
	}
	if err := checkHeader(name, got, header); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	table := &Table{Name: name, Header: header}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(name, err)
		}
		line, _ := reader.FieldPos(0)
		table.Rows = append(table.Rows, Row{Line: line, Fields: fields, index: index})
	}

	return table, nil
}

// ReadHeader читает только первую строку и сверяет ее с header
func ReadHeader(r io.Reader, name string, header []string) error {
	got, err := newReader(r, len(header)).Read()
	if err == io.EOF {
		return fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	if err != nil {
		return classifyReadError(name, err)
	}
	return checkHeader(name, got, header)
}

// EncodeRow кодирует одну строку в байты (с завершающим переводом строки)
func EncodeRow(fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("%w: encode row: %v", ErrWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: encode row: %v", ErrWrite, err)
	}
	return buf.Bytes(), nil
}

// WriteTable пишет заголовок и строки в w
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrWrite, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("%w: write rows: %v", ErrWrite, err)
	}
	return nil
}

func newReader(r io.Reader, fields int) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields
	return reader
}

func checkHeader(name string, got, want []string) error {
	if len(got) > 0 {
		got[0] = strings.TrimPrefix(got[0], utf8BOM)
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return fmt.Errorf("%w: %s: header column %d is %q, expected %q",
				ErrMalformed, name, i+1, got[i], want[i])
		}
	}
	return nil
}

func classifyReadError(name string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, name, parseErr)
	}
	return fmt.Errorf("%w: %s: %v", ErrRead, name, err)
}
