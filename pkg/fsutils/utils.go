package fsutils

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

// ReadJSONFile decodes the JSON file at filePath into o. A missing file
// is not an error unless required is true.
func ReadJSONFile(filePath string, required bool, o interface{}) error {
	return ReadFile(filePath, required, o, func(r io.Reader) Decoder {
		return json.NewDecoder(r)
	})
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) error {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("failed to close file %v: %v", filePath, closeErr)
		}
	}()
	return newDecoder(file).Decode(o)
}

// WriteJSONFile writes o as indented JSON to filePath.
func WriteJSONFile(filePath string, o interface{}) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~/"))
}
