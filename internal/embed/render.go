package embed

import (
	"bytes"
	"io"
	"strconv"
)

const (
	perLine = 16
	indent  = "    "
	hextab  = "0123456789abcdef"
)

// Artifact is a C source file embedding Data as a uint8_t array
type Artifact struct {
	License []string // banner lines, nil for the default license
	Source  string   // name shown in the auto-generated notice
	Symbol  string   // array name, the size constant is Symbol + "_SIZE"
	Data    []byte
}

// Bytes renders the artifact. The output only depends on the artifact's
// fields.
func (a *Artifact) Bytes() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(a.size())
	a.render(buf)
	return buf.Bytes()
}

// WriteTo implements io.WriterTo
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Bytes())
	return int64(n), err
}

func (a *Artifact) render(buf *bytes.Buffer) {
	license := a.License
	if license == nil {
		license = License
	}
	writeComment(buf, license)
	writeComment(buf, notice(a.Source))
	buf.WriteString("#include <stdint.h>\n\n")

	buf.WriteString("const unsigned int ")
	buf.WriteString(a.Symbol)
	buf.WriteString("_SIZE = ")
	buf.WriteString(strconv.Itoa(len(a.Data)))
	buf.WriteString(";\n\n")

	buf.WriteString("const uint8_t ")
	buf.WriteString(a.Symbol)
	buf.WriteString("[] = {\n")
	for i, b := range a.Data {
		if i%perLine == 0 {
			buf.WriteString(indent)
		}
		buf.WriteString("0x")
		buf.WriteByte(hextab[b>>4])
		buf.WriteByte(hextab[b&0x0f])
		buf.WriteString(", ")
		if i%perLine == perLine-1 {
			buf.WriteByte('\n')
		}
	}
	if len(a.Data)%perLine != 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("};\n")
}

func writeComment(buf *bytes.Buffer, lines []string) {
	buf.WriteString("/*\n")
	for _, line := range lines {
		buf.WriteString(" * ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString(" */\n\n")
}

// size estimates the rendered length so the buffer grows once
func (a *Artifact) size() int {
	n := len(a.Data) * 6
	n += (len(a.Data)/perLine + 1) * (len(indent) + 1)
	n += 1024
	return n
}
