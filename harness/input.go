package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jorge-barreto/aoch/day"
)

// StdinPath is the input-file value that selects standard input.
const StdinPath = "-"

// SourceKind says where puzzle input comes from.
type SourceKind int

const (
	Embedded SourceKind = iota
	File
	Stdin
)

func (k SourceKind) String() string {
	switch k {
	case File:
		return "file"
	case Stdin:
		return "stdin"
	default:
		return "embedded"
	}
}

// InputSource is the resolved input location for one run.
type InputSource struct {
	Kind SourceKind
	Path string // set for File
}

// ErrInvalidUTF8 is wrapped in an IOFailure when input is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ResolveInput picks the input source from the given path arguments. Any
// "-" selects standard input; otherwise the first non-empty path is read as
// a file; with no paths the embedded input is used.
func ResolveInput(paths ...string) InputSource {
	for _, p := range paths {
		if p == StdinPath {
			return InputSource{Kind: Stdin}
		}
	}
	for _, p := range paths {
		if p != "" {
			return InputSource{Kind: File, Path: p}
		}
	}
	return InputSource{Kind: Embedded}
}

func (s InputSource) String() string {
	if s.Kind == File {
		return "file " + s.Path
	}
	return s.Kind.String()
}

// Read returns the full input text. Read failures are IOFailure day errors.
func (s InputSource) Read(embedded string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	switch s.Kind {
	case Stdin:
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	case File:
		data, err = os.ReadFile(s.Path)
	default:
		return embedded, nil
	}
	if err != nil {
		return "", day.IO(err)
	}
	return decodeText(data)
}

func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", day.IO(ErrInvalidUTF8)
	}
	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", day.IO(fmt.Errorf("decoding input: %w", err))
	}
	return string(text), nil
}
