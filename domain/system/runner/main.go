//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package runner

import (
	"fmt"
	"io"
)

// Command は委譲実行する外部コマンドを表します。
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env は親プロセスの環境変数に追記する KEY=VALUE のリストです。
	Env []string
}

// Result は終了したコマンドの結果を表します。
type Result struct {
	ExitCode int
	Output   string
}

type IRunner interface {
	// LookPath resolves a command name to an absolute path.
	LookPath(name string) (string, error)
	// Capture runs the command and returns its combined output.
	Capture(cmd Command) (Result, error)
	// Stream runs the command writing combined output to w as it is produced.
	// A nonzero exit status is returned as *ExitError.
	Stream(cmd Command, w io.Writer) (Result, error)
	// Interactive runs the command attached to the current terminal.
	Interactive(cmd Command) error
}

// ExitError は委譲先コマンドが0以外のステータスで終了したことを表します。
// main側はこのコードをそのままプロセスの終了コードにします。
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}
