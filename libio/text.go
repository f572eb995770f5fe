package libio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// LoadFailure is returned by ReadText in place of the file contents when the
// file cannot be read.
const LoadFailure = "file commit die o.o"

// LoadText reads a text file and terminates every line with '\n'.
// Files ending in .lz4 are decompressed first.
func LoadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(file)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %v: %w", path, err)
	}

	text := string(data)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// ReadText is LoadText without the error. Any failure yields LoadFailure.
func ReadText(path string) string {
	text, err := LoadText(path)
	if err != nil {
		return LoadFailure
	}
	return text
}
