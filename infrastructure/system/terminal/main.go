package terminal

import (
	"bufio"
	"fmt"
	"github.com/howeyc/gopass"
	domainTerminal "github.com/kaiwahq/kaiwactl/domain/system/terminal"
	"os"
	"strings"
)

type Terminal struct{}

func NewTerminal() domainTerminal.ITerminal {
	return &Terminal{}
}

func (t *Terminal) ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := gopass.GetPasswdMasked()
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
