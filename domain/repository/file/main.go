//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Read(path string) ([]byte, error)
	Exists(path string) bool
	Delete(path string) error
	RemoveAll(path string) error
	Getwd() (string, error)
	UserHomeDir() (string, error)
}
