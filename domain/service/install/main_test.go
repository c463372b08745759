package install_test

import (
	"errors"
	"github.com/kaiwahq/kaiwactl/domain/repository/config"
	installService "github.com/kaiwahq/kaiwactl/domain/service/install"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	"github.com/kaiwahq/kaiwactl/testUtil"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"testing"
)

func TestInstall(t *testing.T) {
	type Mocks struct {
		Runner *runner.MockIRunner
	}

	factory := func(
		mockCtrl *gomock.Controller,
		customizeMocks func(mocks Mocks),
	) *installService.InstallService {
		mockRunner := runner.NewMockIRunner(mockCtrl)
		preflightSvc := preflight.NewPreflightService(mockRunner)

		customizeMocks(Mocks{
			Runner: mockRunner,
		})

		return installService.NewInstallService(preflightSvc, mockRunner)
	}

	expectHealthyPython := func(mocks Mocks) {
		mocks.Runner.EXPECT().LookPath("python3").Return("/usr/bin/python3", nil)
		mocks.Runner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"--version"}}).
			Return(runner.Result{ExitCode: 0, Output: "Python 3.11.2\n"}, nil)
		mocks.Runner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "--version"}}).
			Return(runner.Result{ExitCode: 0, Output: "pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.11)\n"}, nil)
	}

	t.Run("マニフェストが存在する場合はそれを使ってインストールする", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("requirements.txt", []byte("openai\nrich\n"))

		testee := factory(mockCtrl, func(mocks Mocks) {
			expectHealthyPython(mocks)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "install", "--upgrade", "pip"}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "install", "-r", "requirements.txt"}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "install", "-e", "."}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
		})

		err := testee.Install(space.Dir, config.Default(), zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("マニフェストがない場合はフォールバックのパッケージ一覧を使う", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := factory(mockCtrl, func(mocks Mocks) {
			expectHealthyPython(mocks)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "install", "--upgrade", "pip"}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
			mocks.Runner.EXPECT().
				Stream(runner.Command{
					Name: "/usr/bin/python3",
					Args: []string{"-m", "pip", "install", "openai", "rich", "python-dotenv", "pwinput", "pyperclip", "colorama", "prompt_toolkit", "gradio>=4.0.0"},
					Dir:  space.Dir,
				}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
			mocks.Runner.EXPECT().
				Stream(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "install", "-e", "."}, Dir: space.Dir}, gomock.Any()).
				Return(runner.Result{ExitCode: 0}, nil)
		})

		err := testee.Install(space.Dir, config.Default(), zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("インタプリタがない場合はインストールステップを実行せずに失敗する", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := factory(mockCtrl, func(mocks Mocks) {
			mocks.Runner.EXPECT().LookPath(gomock.Any()).Return("", eris.New("executable file not found in $PATH")).Times(2)
		})

		err := testee.Install(space.Dir, config.Default(), zap.NewNop())
		assert.ErrorIs(t, err, preflight.ErrPythonMissing)
	})

	t.Run("委譲先コマンドの終了コードがそのまま伝播する", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := factory(mockCtrl, func(mocks Mocks) {
			expectHealthyPython(mocks)
			mocks.Runner.EXPECT().
				Stream(gomock.Any(), gomock.Any()).
				Return(runner.Result{ExitCode: 2}, &runner.ExitError{Code: 2})
		})

		err := testee.Install(space.Dir, config.Default(), zap.NewNop())
		assert.Error(t, err)

		var exitErr *runner.ExitError
		assert.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 2, exitErr.Code)
	})
}
