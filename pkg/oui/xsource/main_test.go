package xsource

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// httptest.Server.Close 只关闭空闲连接，个别 keep-alive 读写协程退出有延迟
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}
