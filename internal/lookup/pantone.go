package lookup

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/evert/color-hints-mcp-go/internal/pkg/color"
)

// PantoneEntry is one color of a Pantone book.
type PantoneEntry struct {
	Code string
	Name string
	Hex  string
}

type pantoneBook struct {
	Data struct {
		GetBook struct {
			Colors []pantoneColor `json:"colors"`
		} `json:"getBook"`
	} `json:"data"`
}

type pantoneColor struct {
	Code string  `json:"code"`
	Name *string `json:"name"`
	RGB  struct {
		R channel `json:"r"`
		G channel `json:"g"`
		B channel `json:"b"`
	} `json:"rgb"`
}

// channel accepts both "12.5" and 12.5.
type channel float64

func (c *channel) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid channel value %s: %w", data, err)
	}
	*c = channel(f)
	return nil
}

func (c channel) toByte() uint8 {
	return uint8(color.ClampInt(color.RoundHalfUp(float64(c)), 0, 255))
}

// ParsePantoneBook decodes one book document.
func ParsePantoneBook(data []byte) ([]PantoneEntry, error) {
	var book pantoneBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parsing Pantone book: %w", err)
	}

	entries := make([]PantoneEntry, 0, len(book.Data.GetBook.Colors))
	for _, c := range book.Data.GetBook.Colors {
		if c.Code == "" {
			continue
		}
		e := PantoneEntry{
			Code: c.Code,
			Hex:  color.RGBToHex(c.RGB.R.toByte(), c.RGB.G.toByte(), c.RGB.B.toByte()),
		}
		if c.Name != nil {
			e.Name = *c.Name
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadPantoneBooks reads the named books (or every *.json file when books is
// empty) from fsys and returns the code and name maps, both lowercase-keyed.
func LoadPantoneBooks(fsys fs.FS, books []string) (codes, names map[string]string, err error) {
	if len(books) == 0 {
		books, err = fs.Glob(fsys, "*.json")
		if err != nil {
			return nil, nil, fmt.Errorf("listing Pantone books: %w", err)
		}
	}

	codes = make(map[string]string)
	names = make(map[string]string)
	for _, book := range books {
		data, err := fs.ReadFile(fsys, path.Clean(book))
		if err != nil {
			// Missing books are skipped; the rest still load.
			slog.Warn("skipping Pantone book", "book", book, "error", err)
			continue
		}
		entries, err := ParsePantoneBook(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", book, err)
		}
		for _, e := range entries {
			codes[strings.ToLower(e.Code)] = e.Hex
			if e.Name != "" {
				names[strings.ToLower(e.Name)] = e.Hex
			}
		}
		slog.Debug("loaded Pantone book", "book", book, "colors", len(entries))
	}
	return codes, names, nil
}

// LoadPantoneDir is LoadPantoneBooks over a directory on disk.
func LoadPantoneDir(dir string, books []string) (codes, names map[string]string, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%s is not a directory", dir)
	}
	return LoadPantoneBooks(os.DirFS(dir), books)
}
