package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalDisk guarda archivos subidos (foto de perfil, recibos) en el disco local.
// El root se crea bajo demanda; los paths se resuelven siempre relativos al root.
type LocalDisk struct {
	root string
}

// NewLocalDisk construye el driver de disco. root puede ser relativo al working directory.
func NewLocalDisk(root string) *LocalDisk {
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &LocalDisk{root: root}
}

func (d *LocalDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// Put escribe el contenido del reader en root/path, creando los directorios intermedios.
func (d *LocalDisk) Put(path string, r io.Reader) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	return nil
}

// Exists indica si el archivo ya fue guardado.
func (d *LocalDisk) Exists(path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}
