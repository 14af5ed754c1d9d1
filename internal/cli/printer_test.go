package cli

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPrinter_Marks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter()
	p.Redirect(&buf)
	assert.False(t, p.color, "A buffer is not a terminal")

	p.Pass("rule %s", "a")
	p.Fail("rule %s", "b")
	assert.Equal(t, "PASS rule a\nFAIL rule b\n", buf.String())

	buf.Reset()
	p.SetColor(true)
	p.Pass("ok")
	p.Fail("bad")
	assert.Equal(t, "\x1b[32mPASS\x1b[0m ok\n\x1b[31mFAIL\x1b[0m bad\n", buf.String())
}

func TestPrinter_Write(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter()
	p.Redirect(&buf)
	n, err := p.Write([]byte("raw"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	p.Println("line")
	p.Printf("%d", 5)
	assert.Equal(t, "rawline\n5", buf.String())
}
