package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdio реализует IO поверх произвольных потоков ввода/вывода
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio создает IO поверх os.Stdin и os.Stdout
func NewStdio() IO {
	return NewStream(os.Stdin, os.Stdout)
}

// NewStream создает IO поверх заданных потоков
func NewStream(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
