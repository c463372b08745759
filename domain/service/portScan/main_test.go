package portScan_test

import (
	"github.com/kaiwahq/kaiwactl/domain/service/portScan"
	"github.com/stretchr/testify/assert"
	"net"
	"testing"
)

func TestFindAvailable(t *testing.T) {
	t.Run("空いているポートはそのまま返す", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		port := ln.Addr().(*net.TCPAddr).Port
		ln.Close()

		testee := portScan.NewPortScanService()
		assert.Equal(t, port, testee.FindAvailable(port, port))
	})

	t.Run("使用中のポートは飛ばして次を返す", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		defer ln.Close()
		used := ln.Addr().(*net.TCPAddr).Port

		testee := portScan.NewPortScanService()
		found := testee.FindAvailable(used, used+20)

		assert.NotEqual(t, used, found)
		assert.GreaterOrEqual(t, found, used+1)
		assert.LessOrEqual(t, found, used+20)
	})

	t.Run("範囲内に空きがない場合は先頭のポートを返す", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)
		defer ln.Close()
		used := ln.Addr().(*net.TCPAddr).Port

		testee := portScan.NewPortScanService()
		assert.Equal(t, used, testee.FindAvailable(used, used))
	})
}
