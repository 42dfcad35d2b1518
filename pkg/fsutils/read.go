package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads up to max bytes of a file. max == 0 reads the whole
// file, max > 0 reads the first max bytes, max < 0 reads the last |max|
// bytes.
func ReadFileData(filePath string, max int) (data []byte, err error) {
	if max == 0 {
		return os.ReadFile(filePath)
	}

	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()

	if max > 0 {
		n := int64(max)
		if n > size {
			n = size
		}
		data = make([]byte, n)
		_, err = io.ReadFull(file, data)
		return data, err
	}

	// Tail read.
	n := int64(-max)
	if n > size {
		n = size
	}
	if _, err = file.Seek(size-n, io.SeekStart); err != nil {
		return nil, err
	}
	data = make([]byte, n)
	_, err = io.ReadFull(file, data)
	return data, err
}
