package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "non_existent"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		assert.NoError(t, os.WriteFile(filePath, []byte("test"), 0644))

		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("stat_error", func(t *testing.T) {
		// A null byte makes os.Stat fail with something other than
		// "not exists".
		_, err := DirExists("path\x00with-null")
		assert.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.NoError(t, err)

	for _, tt := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/some/path", "/some/path"},
		{"~elsewhere", "~elsewhere"},
		{"~", home},
		{"~/abc", filepath.Join(home, "abc")},
	} {
		assert.Equal(t, tt.want, ExpandHome(tt.in))
	}
}

func TestReadJSONFile(t *testing.T) {
	type A struct {
		B string
	}

	writeTemp := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "a.json")
		assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("empty_not_required", func(t *testing.T) {
		var a A
		assert.NoError(t, ReadJSONFile("", false, &a))
	})

	t.Run("not_found_not_required", func(t *testing.T) {
		var a A
		assert.NoError(t, ReadJSONFile("non_existent.json", false, &a))
	})

	t.Run("not_found_required", func(t *testing.T) {
		var a A
		assert.Error(t, ReadJSONFile("non_existent.json", true, &a))
	})

	t.Run("success", func(t *testing.T) {
		var a A
		assert.NoError(t, ReadJSONFile(writeTemp(t, `{"B": "test"}`), true, &a))
		assert.Equal(t, "test", a.B)
	})

	t.Run("invalid_json", func(t *testing.T) {
		var a A
		assert.Error(t, ReadJSONFile(writeTemp(t, `{invalid}`), true, &a))
	})
}

type mockDecoder struct {
	err error
}

func (m mockDecoder) Decode(interface{}) error {
	return m.err
}

func TestReadFile_DecoderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	err := ReadFile(path, true, nil, func(io.Reader) Decoder {
		return mockDecoder{err: io.EOF}
	})
	assert.Error(t, err)
}

func TestWriteJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "state.json")

	type payload struct {
		Name string `json:"name"`
	}

	assert.NoError(t, WriteJSONFile(filePath, payload{Name: "abc"}))

	var got payload
	assert.NoError(t, ReadJSONFile(filePath, true, &got))
	assert.Equal(t, "abc", got.Name)

	t.Run("unmarshalable", func(t *testing.T) {
		assert.Error(t, WriteJSONFile(filePath, func() {}))
	})

	t.Run("bad_path", func(t *testing.T) {
		err := WriteJSONFile(filepath.Join(tmpDir, "no_such_dir", "x.json"), payload{})
		assert.Error(t, err)
	})
}
