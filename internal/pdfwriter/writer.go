package pdfwriter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/alnah/go-proposal/internal/layout"
)

// Version is the PDF header version.
const Version = "1.4"

// DefaultProducer is written to the Info dictionary when Info.Producer is
// empty.
const DefaultProducer = "go-proposal"

// Sentinel errors.
var (
	ErrNoPages     = errors.New("no pages to write")
	ErrInvalidPage = errors.New("invalid page")
	ErrCompress    = errors.New("content stream compression failed")
)

// Info is the document metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string

	// CreationDate is written only when non-zero.
	CreationDate time.Time
}

// DefaultCompression is the zlib level used unless WithCompression is given.
const DefaultCompression = zlib.DefaultCompression

// Option configures a Writer.
type Option func(*Writer)

// WithCompression sets the zlib level for content streams. Level 0
// disables compression entirely.
func WithCompression(level int) Option {
	return func(w *Writer) {
		w.level = level
	}
}

// Writer serializes pages. It holds only configuration and is safe for
// concurrent use.
type Writer struct {
	level int
}

// New creates a Writer that compresses with DefaultCompression.
func New(opts ...Option) *Writer {
	w := &Writer{level: DefaultCompression}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes pages with the default Writer.
func Write(pages []layout.Page, info Info) ([]byte, error) {
	return New().Write(pages, info)
}

// fontResources maps each layout font to its resource name and object number.
// Objects 1 and 2 are the catalog and page tree.
var fontResources = [...]struct {
	name string
	obj  int
}{
	layout.FontRegular: {"F1", 3},
	layout.FontBold:    {"F2", 4},
}

// Write serializes pages into a complete PDF file. Nothing is returned on
// error.
func (w *Writer) Write(pages []layout.Page, info Info) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	doc := &document{}
	doc.add("<< /Type /Catalog /Pages 2 0 R >>")
	doc.add("") // page tree, filled in once the kids are known
	for _, f := range layout.Fonts() {
		doc.add(fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", f.Name()))
	}

	var fonts strings.Builder
	for _, f := range layout.Fonts() {
		r := fontResources[f]
		fmt.Fprintf(&fonts, "/%s %d 0 R ", r.name, r.obj)
	}
	resources := "<< /Font << " + fonts.String() + ">> >>"

	kids := make([]string, 0, len(pages))
	for i, p := range pages {
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("%w: page %d has size %.2fx%.2f", ErrInvalidPage, i+1, p.Width, p.Height)
		}
		content, err := contentStream(p.Commands)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		stream, err := w.stream(content)
		if err != nil {
			return nil, err
		}
		streamObj := doc.add(stream)
		pageObj := doc.add(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Contents %d 0 R /Resources %s >>",
			num(p.Width), num(p.Height), streamObj, resources))
		kids = append(kids, strconv.Itoa(pageObj)+" 0 R")
	}
	doc.objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	infoObj := doc.add(infoDict(info))
	return doc.bytes(infoObj), nil
}

// stream wraps content in a stream object body, compressing it when enabled.
func (w *Writer) stream(content []byte) (string, error) {
	if w.level == 0 {
		return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content), nil
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, w.level)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if _, err := zw.Write(content); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompress, err)
	}
	return fmt.Sprintf("<< /Length %d /Filter /FlateDecode >>\nstream\n%s\nendstream", buf.Len(), buf.Bytes()), nil
}

// document accumulates indirect objects; object n is objects[n-1].
type document struct {
	objects []string
}

func (d *document) add(obj string) int {
	d.objects = append(d.objects, obj)
	return len(d.objects)
}

// bytes writes header, objects, cross-reference table and trailer.
func (d *document) bytes(infoObj int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n", Version)
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	offsets := make([]int, len(d.objects))
	for i, obj := range d.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(d.objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info %d 0 R >>\n", len(d.objects)+1, infoObj)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefPos)
	return buf.Bytes()
}

func infoDict(info Info) string {
	producer := info.Producer
	if producer == "" {
		producer = DefaultProducer
	}

	var sb strings.Builder
	sb.WriteString("<<")
	for _, field := range []struct{ key, value string }{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Creator", info.Creator},
		{"Producer", producer},
	} {
		if field.value != "" {
			fmt.Fprintf(&sb, " /%s (%s)", field.key, escapeString(field.value))
		}
	}
	if !info.CreationDate.IsZero() {
		fmt.Fprintf(&sb, " /CreationDate (%s)", info.CreationDate.UTC().Format("D:20060102150405Z"))
	}
	sb.WriteString(" >>")
	return sb.String()
}
