// Package runlog は kaiwactl の実行ごとの監査ディレクトリとログファイルを管理します。
// install や upgrade の各実行は .kaiwa/runs/<id>/ に記録されます。
package runlog

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
	"time"
)

const FileName = "run.log"

// Log は1回の実行に対応する監査ディレクトリとロガーです。
type Log struct {
	*zap.Logger
	Dir  string
	file *os.File
}

// Open は <rootDir>/.kaiwa/runs/<id>/ を作成し、タイムスタンプファイルと
// JSON Lines形式の run.log を配置します。
func Open(rootDir string, id string, now time.Time) (*Log, error) {
	runBaseDir := filepath.Join(rootDir, ".kaiwa", "runs")
	err := os.MkdirAll(runBaseDir, 0755)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create run base directory")
	}

	runDir := filepath.Join(runBaseDir, id)
	err = os.Mkdir(runDir, 0755)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create run directory")
	}

	timeFile := filepath.Join(runDir, now.Format("2006-01-02T15:04:05"))
	_, err = os.Create(timeFile)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create time file")
	}

	file, err := os.Create(filepath.Join(runDir, FileName))
	if err != nil {
		return nil, eris.Wrap(err, "failed to create log file")
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		zap.InfoLevel,
	)

	return &Log{
		Logger: zap.New(core),
		Dir:    runDir,
		file:   file,
	}, nil
}

// Close flushes buffered entries and closes the underlying log file.
func (l *Log) Close() error {
	_ = l.Logger.Sync()
	return l.file.Close()
}
