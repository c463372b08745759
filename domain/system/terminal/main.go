//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package terminal

type ITerminal interface {
	// ReadSecret shows prompt and reads a line with the input masked.
	ReadSecret(prompt string) (string, error)
	// Confirm shows prompt and reads a yes/no answer. Only "y" and "yes"
	// (case-insensitive) are treated as true.
	Confirm(prompt string) (bool, error)
}
