package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-notify/internal/directory"
	"civic-notify/internal/model"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestListDecodesRecipients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/recipients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"r1","name":"Ana Vera","address":"Centro","email":"ana@example.com","role":"ciudadano"},
			{"id":"a1","name":"Admin","address":"","email":"admin@manta.gob.ec","role":"admin"}
		]`))
	}))
	defer srv.Close()

	c := New(testLogger{}, srv.URL, time.Second)
	got, err := c.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, model.RoleCitizen, got[0].Role)
	assert.Equal(t, model.RoleAdmin, got[1].Role)
}

func TestListServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(testLogger{}, srv.URL, time.Second)
	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, directory.ErrUnavailable)
}

func TestListUnreachable(t *testing.T) {
	c := New(testLogger{}, "http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, directory.ErrUnavailable)
}

func TestListMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	c := New(testLogger{}, srv.URL, time.Second)
	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, directory.ErrUnavailable)
}
