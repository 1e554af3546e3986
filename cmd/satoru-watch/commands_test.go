package main

import (
	"context"
	"testing"
	"time"

	"satoru/internal/client/api"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unexpectedFetch(t *testing.T) func(context.Context, string) (*api.DocumentDetail, error) {
	return func(context.Context, string) (*api.DocumentDetail, error) {
		t.Error("fetch should not be called")

		return nil, errors.New("unexpected fetch")
	}
}

func TestWaitForDocument_ReturnsMatchingUpdate(t *testing.T) {
	finished := make(chan api.Document, 2)
	finished <- api.Document{ID: "other", Status: api.StatusCompleted}
	finished <- api.Document{ID: "7", Status: api.StatusCompleted, Pages: 3}

	doc, err := waitForDocument(context.Background(), finished, "7", time.Minute, unexpectedFetch(t))

	require.NoError(t, err)
	assert.Equal(t, "7", doc.ID)
	assert.Equal(t, 3, doc.Pages)
}

func TestWaitForDocument_InterruptStopsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := waitForDocument(ctx, make(chan api.Document), "7", time.Minute, unexpectedFetch(t))

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForDocument_FetchesAfterTimeout(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "finished while update was missed", status: api.StatusCompleted},
		{name: "still processing", status: api.StatusProcessing, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fetched string
			fetch := func(_ context.Context, id string) (*api.DocumentDetail, error) {
				fetched = id

				return &api.DocumentDetail{Document: api.Document{ID: id, Status: tt.status}}, nil
			}

			doc, err := waitForDocument(context.Background(), make(chan api.Document), "7", 10*time.Millisecond, fetch)

			assert.Equal(t, "7", fetched)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, api.StatusCompleted, doc.Status)
		})
	}
}
