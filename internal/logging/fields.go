package logging

import (
	"time"

	"go.uber.org/zap"
)

func String[U, V ~string](key U, v V) Field {
	return zap.String(string(key), string(v))
}

func Int[S ~string](key S, v int) Field {
	return zap.Int(string(key), v)
}

func Bool[S ~string](key S, v bool) Field {
	return zap.Bool(string(key), v)
}

func Duration[S ~string](key S, d time.Duration) Field {
	return zap.Duration(string(key), d)
}

func Error(err error) Field {
	return zap.Error(err)
}
