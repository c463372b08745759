package doctorCommand

import (
	"github.com/kaiwahq/kaiwactl/domain/service/configFindService"
	"github.com/kaiwahq/kaiwactl/domain/service/dotfileFind"
	"github.com/kaiwahq/kaiwactl/domain/service/preflight"
	"github.com/kaiwahq/kaiwactl/domain/system/runner"
	configRepoImpl "github.com/kaiwahq/kaiwactl/infrastructure/repository/config"
	fileRepoImpl "github.com/kaiwahq/kaiwactl/infrastructure/repository/file"
	"github.com/kaiwahq/kaiwactl/testUtil"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
)

func TestDoctorCommand(t *testing.T) {
	factory := func(mockRunner *runner.MockIRunner) *DoctorCommand {
		fileRepository := fileRepoImpl.NewFileRepository()
		configRepository := configRepoImpl.NewConfigRepository()
		configFindSvc := configFindService.NewConfigFindService(fileRepository)
		preflightSvc := preflight.NewPreflightService(mockRunner)
		dotfileFindSvc := dotfileFind.NewDotfileFindService(fileRepository)

		return NewDoctorCommand(configFindSvc, configRepository, preflightSvc, dotfileFindSvc, mockRunner)
	}

	t.Run("必須チェックが全て通る場合は正常終了する", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))
		space.WriteFile(".kaiwa.env", []byte("KAIWA_PROVIDER=groq\n"))

		mockRunner := runner.NewMockIRunner(mockCtrl)
		mockRunner.EXPECT().LookPath("python3").Return("/usr/bin/python3", nil)
		mockRunner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"--version"}}).
			Return(runner.Result{ExitCode: 0, Output: "Python 3.11.2\n"}, nil)
		mockRunner.EXPECT().Capture(runner.Command{Name: "/usr/bin/python3", Args: []string{"-m", "pip", "--version"}}).
			Return(runner.Result{ExitCode: 0, Output: "pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.11)\n"}, nil)
		mockRunner.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
		mockRunner.EXPECT().LookPath("kaiwa").Return("", eris.New("executable file not found in $PATH"))
		mockRunner.EXPECT().LookPath("kaiwa-web").Return("", eris.New("executable file not found in $PATH"))

		doctorCmd := factory(mockRunner)

		cmd := &cobra.Command{}
		cmd.AddCommand(doctorCmd.CobraCommand)
		cmd.SetArgs([]string{"doctor"})

		err := doctorCmd.CobraCommand.Execute()
		assert.NoError(t, err)
	})

	t.Run("インタプリタがない場合はエラーで終了する", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kaiwa.yml", []byte("package: kaiwa\n"))

		mockRunner := runner.NewMockIRunner(mockCtrl)
		mockRunner.EXPECT().LookPath("python3").Return("", eris.New("executable file not found in $PATH"))
		mockRunner.EXPECT().LookPath("python").Return("", eris.New("executable file not found in $PATH"))
		mockRunner.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
		mockRunner.EXPECT().LookPath("kaiwa").Return("", eris.New("executable file not found in $PATH"))
		mockRunner.EXPECT().LookPath("kaiwa-web").Return("", eris.New("executable file not found in $PATH"))

		doctorCmd := factory(mockRunner)

		cmd := &cobra.Command{}
		cmd.AddCommand(doctorCmd.CobraCommand)
		cmd.SetArgs([]string{"doctor"})

		err := doctorCmd.CobraCommand.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})
}
