package runner

import (
	"bytes"
	"errors"
	domainRunner "github.com/kaiwahq/kaiwactl/domain/system/runner"
	"io"
	"os"
	"os/exec"
)

type ExecRunner struct{}

func NewExecRunner() domainRunner.IRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) Capture(c domainRunner.Command) (domainRunner.Result, error) {
	var buf bytes.Buffer
	return r.run(c, &buf, &buf)
}

func (r *ExecRunner) Stream(c domainRunner.Command, w io.Writer) (domainRunner.Result, error) {
	var buf bytes.Buffer
	return r.run(c, io.MultiWriter(w, &buf), &buf)
}

func (r *ExecRunner) Interactive(c domainRunner.Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	_, err = toResult("", err)
	return err
}

func (r *ExecRunner) run(c domainRunner.Command, out io.Writer, captured *bytes.Buffer) (domainRunner.Result, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	return toResult(captured.String(), err)
}

func toResult(output string, err error) (domainRunner.Result, error) {
	if err == nil {
		return domainRunner.Result{ExitCode: 0, Output: output}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return domainRunner.Result{ExitCode: code, Output: output}, &domainRunner.ExitError{Code: code}
	}

	return domainRunner.Result{ExitCode: -1, Output: output}, err
}
