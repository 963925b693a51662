package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"estate/config"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	out, err := newOutput(logCfg.File)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if logCfg.Pretty {
		return slog.New(slog.NewTextHandler(out, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(out, opts)).With(
		slog.String("service", params.Config.Env.ServiceName),
	), nil
}

// newOutput returns stdout, teed into a rotating file when a path is configured.
func newOutput(fileCfg config.LogFile) (io.Writer, error) {
	if strings.TrimSpace(fileCfg.Path) == "" {
		return os.Stdout, nil
	}

	opts := []rotatelogs.Option{rotatelogs.WithLinkName(fileCfg.Path)}
	if fileCfg.MaxAge > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(fileCfg.MaxAge))
	}
	if fileCfg.RotationTime > 0 {
		opts = append(opts, rotatelogs.WithRotationTime(fileCfg.RotationTime))
	}

	rotator, err := rotatelogs.New(fileCfg.Path+".%Y%m%d", opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rotating log file")
	}

	return io.MultiWriter(os.Stdout, rotator), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
