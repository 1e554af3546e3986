package usecase

import (
	"testing"

	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "database failure", err: errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find document"), "load"), want: true},
		{name: "storage failure", err: errors.Wrap(domainerrors.ErrStorageFailed.WithDetails("503"), "download"), want: true},
		{name: "summarizer failure", err: domainerrors.ErrSummarizerFailed, want: false},
		{name: "not found", err: errors.Wrap(domainerrors.ErrDocumentNotFound, "find"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
