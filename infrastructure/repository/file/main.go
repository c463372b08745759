package file

import "os"

type FileRepository struct{}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

func (r *FileRepository) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *FileRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func (r *FileRepository) Delete(path string) error {
	return os.Remove(path)
}

func (r *FileRepository) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (r *FileRepository) Getwd() (string, error) {
	return os.Getwd()
}

func (r *FileRepository) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
