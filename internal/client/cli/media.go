package cli

import (
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// attachFn receives an opened upload and its MIME type.
type attachFn func(f *os.File, mimeType string) error

// attachFile prompts for a path and hands the file to fn. An empty answer
// skips the upload when optional is set.
func (a *App) attachFile(prompt string, optional bool, fn attachFn) error {
	for {
		path, err := a.prompt(prompt)
		if err != nil {
			return err
		}
		if path == "" && optional {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			a.println(err.Error())
			continue
		}
		err = fn(f, mimeOf(path))
		f.Close()
		if err != nil {
			a.println(err.Error())
			continue
		}
		return nil
	}
}

// mimeOf guesses the type from the extension; "" lets the content decide.
func mimeOf(path string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
