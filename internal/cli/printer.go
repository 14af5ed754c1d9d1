package cli

import (
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Printer writes user-visible output, which goes to STDERR by default.
// Pass and fail marks are colored when the output is a terminal, unless overridden with [Printer.SetColor].
type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr, color: isTerminal(os.Stderr)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Redirect changes where output is written, and re-detects whether it should be colored.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.color = isTerminal(writer)
}

func (p *Printer) SetColor(enabled bool) {
	p.color = enabled
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Pass prints a line marked PASS.
func (p *Printer) Pass(format string, args ...any) {
	p.mark("PASS", ansiGreen, format, args...)
}

// Fail prints a line marked FAIL.
func (p *Printer) Fail(format string, args ...any) {
	p.mark("FAIL", ansiRed, format, args...)
}

func (p *Printer) mark(label, color string, format string, args ...any) {
	if p.color {
		label = color + label + ansiReset
	}
	p.Printf("%s %s\n", label, fmt.Sprintf(format, args...))
}
