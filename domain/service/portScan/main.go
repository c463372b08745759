package portScan

import (
	"fmt"
	"net"
)

type PortScanService struct{}

func NewPortScanService() *PortScanService {
	return &PortScanService{}
}

// FindAvailable は [start, end] の範囲でバインドできる最初のポートを返します。
// 全て使用中の場合は start を返し、最終的なエラー処理は委譲先のサーバに任せます。
func (s *PortScanService) FindAvailable(start int, end int) int {
	for port := start; port <= end; port++ {
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port)))
		if err == nil {
			ln.Close()
			return port
		}
	}
	return start
}
