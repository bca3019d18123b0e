package csvfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var testHeader = []string{"id", "name", "size"}

func TestRead(t *testing.T) {
	input := "id,name,size\nA,\"Table, corner\",4\nB,Bar,2\n"

	table, err := Read(strings.NewReader(input), "test.csv", testHeader)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "Table, corner", table.Rows[0].Get("name"))
	assert.Equal(t, 2, table.Rows[0].Line)
	assert.Equal(t, "2", table.Rows[1].Get("size"))
	assert.Equal(t, 3, table.Rows[1].Line)
	assert.Equal(t, "", table.Rows[1].Get("missing"))
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty file", input: "", wantErr: ErrEmptyFile},
		{name: "wrong header name", input: "id,title,size\n", wantErr: ErrMalformed},
		{name: "wrong header order", input: "name,id,size\n", wantErr: ErrMalformed},
		{name: "too few fields in row", input: "id,name,size\nA,Bar\n", wantErr: ErrMalformed},
		{name: "too many fields in row", input: "id,name,size\nA,Bar,2,extra\n", wantErr: ErrMalformed},
		{name: "bare quote", input: "id,name,size\nA,Ba\"r,2\n", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "test.csv", testHeader)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrDataIntegrity)
		})
	}
}

func TestRead_HeaderWithBOM(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeffid,name,size\nA,Bar,2\n"), "bom.csv", testHeader)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv"), testHeader)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWriteTable_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{{"A", "Table, corner", "4"}, {"B", "say \"hi\"", "2"}}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, testHeader, rows))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	table, err := ReadTable(path, testHeader)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, rows[0], table.Rows[0].Fields)
	assert.Equal(t, rows[1], table.Rows[1].Fields)
}

func TestEncodeRow(t *testing.T) {
	b, err := EncodeRow([]string{"A", "x,y"})
	require.NoError(t, err)
	assert.Equal(t, "A,\"x,y\"\n", string(b))
}

func TestReadHeader(t *testing.T) {
	assert.NoError(t, ReadHeader(strings.NewReader("id,name,size\nrest"), "h.csv", testHeader))
	assert.ErrorIs(t, ReadHeader(strings.NewReader(""), "h.csv", testHeader), ErrEmptyFile)
	assert.ErrorIs(t, ReadHeader(strings.NewReader("a,b,c\n"), "h.csv", testHeader), ErrMalformed)
}
