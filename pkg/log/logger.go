package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const module = "Blackout"

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	L = New(zapcore.AddSync(os.Stdout))
}

// New JSON 输出，caller 从模块目录开始截取
func New(ws zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = trimCaller
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// SetApp 进程启动读完配置后调用，之后每条日志带 app 字段
func SetApp(app string, debug bool) {
	if debug && os.Getenv("LOG_LEVEL") == "" {
		level.SetLevel(zap.DebugLevel)
	}
	if app != "" {
		L = L.With(zap.String("app", app))
	}
}

func trimCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if i := strings.Index(caller.File, module); i != -1 {
		enc.AppendString(caller.File[i:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}
