package dotenv

import (
	"github.com/joho/godotenv"
	domainDotenv "github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"os"
	"path/filepath"
)

type repositoryImpl struct{}

func NewRepository() domainDotenv.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Read(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	return godotenv.Read(path)
}

func (r *repositoryImpl) Write(path string, values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	return godotenv.Write(values, path)
}
