package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("  yes \nsecond line\n"), &out)

	first, err := s.ReadInput("Confirm: ")
	require.NoError(t, err)
	assert.Equal(t, "yes", first)

	second, err := s.ReadInput("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "second line", second)

	assert.Equal(t, "Confirm: Again: ", out.String())
}

// Последняя строка без перевода строки тоже читается
func TestReadInput_NoTrailingNewline(t *testing.T) {
	s := NewStream(strings.NewReader("no"), io.Discard)

	input, err := s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "no", input)

	_, err = s.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	n, err := s.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "raw", out.String())
}
