package logbase_test

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/philipp01105/csplog/config"
	"github.com/philipp01105/csplog/logbase"
	"github.com/philipp01105/csplog/logger"
)

func ExampleInit() {
	dir, _ := os.MkdirTemp("", "csplog")
	defer os.RemoveAll(dir)

	env := logbase.Init(config.Config{LogDir: dir}, logbase.WithPID("1234"), logbase.WithLogger(zap.NewNop()))
	res := env.Handler(logbase.RecordLogName)
	if !res.OK() {
		fmt.Println(res.Err)
		return
	}
	defer res.Handler.Close()

	logger.Get(logbase.RecordLogName).Info("pass")

	fmt.Println(res.Handler.Path() == env.Factory.BaseName(logbase.RecordLogName)+".0")
	// Output: true
}
