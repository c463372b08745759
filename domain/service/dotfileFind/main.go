//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package dotfileFind

import (
	"github.com/kaiwahq/kaiwactl/domain/repository/dotenv"
	"path/filepath"
)

type DotfileFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
	UserHomeDir() (string, error)
	Exists(path string) bool
}

func NewDotfileFindService(fileRepository FileRepository) *DotfileFindService {
	return &DotfileFindService{
		fileRepository: fileRepository,
	}
}

// Find は .kaiwa.env をカレントディレクトリ、ホームディレクトリの順で探します。
// 見つからない場合は found=false を返し、path は書き込み先の既定値(ホームディレクトリ)になります。
func (s *DotfileFindService) Find() (string, bool, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", false, err
	}

	localPath := filepath.Join(currentDir, dotenv.FileName)
	if s.fileRepository.Exists(localPath) {
		return localPath, true, nil
	}

	homeDir, err := s.fileRepository.UserHomeDir()
	if err != nil {
		return "", false, err
	}

	homePath := filepath.Join(homeDir, dotenv.FileName)
	if s.fileRepository.Exists(homePath) {
		return homePath, true, nil
	}

	return homePath, false, nil
}
