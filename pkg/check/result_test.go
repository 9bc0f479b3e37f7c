package check

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, Status("OK"), StatusOK)
	assert.Equal(t, Status("FAIL"), StatusFail)
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	assert.True(t, result.OK())

	result.Status = StatusFail
	assert.False(t, result.OK())
}

func TestResult_Code(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"passed", nil, ""},
		{"plain error", fs.ErrNotExist, errors.CodeUnknown},
		{"coded error", errors.New(errors.CodeNotFound, "gone"), errors.CodeNotFound},
		{"wrapped coded error", fmt.Errorf("read: %w", errors.New(errors.CodeForbidden, "no")), errors.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{Err: tt.err}
			assert.Equal(t, tt.want, r.Code())
		})
	}
}
