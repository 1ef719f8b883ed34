package infra

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps uploaded documents on the local filesystem under a single
// base directory. Stored names are unique so concurrent uploads of files with
// the same original name never collide.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("filestore: create dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Guardar writes the uploaded file to disk under a generated unique name and
// returns that name along with the full path.
func (fs *FileStore) Guardar(fh *multipart.FileHeader) (nombre, ruta string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("filestore: open upload: %w", err)
	}
	defer src.Close()

	nombre = fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(fh.Filename))
	ruta = filepath.Join(fs.dir, nombre)

	dst, err := os.Create(ruta)
	if err != nil {
		return "", "", fmt.Errorf("filestore: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(ruta)
		return "", "", fmt.Errorf("filestore: write file: %w", err)
	}
	return nombre, ruta, nil
}

// Eliminar removes a stored file. A file that is already gone is not an error.
func (fs *FileStore) Eliminar(ruta string) error {
	if ruta == "" {
		return nil
	}
	if err := os.Remove(ruta); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: remove file: %w", err)
	}
	return nil
}
