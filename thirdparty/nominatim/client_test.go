package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/roadside-assistance/thirdparty/nominatim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Reverse(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"display_name":"Jalan Sudirman, Jakarta"}`,
			want:   "Jalan Sudirman, Jakarta",
		},
		{
			name:    "no result",
			status:  http.StatusOK,
			body:    `{"error":"Unable to geocode"}`,
			wantErr: nominatim.ErrNoResult,
		},
		{
			name:    "upstream error status",
			status:  http.StatusTooManyRequests,
			body:    `slow down`,
			wantErr: nominatim.ErrInvalidResponse,
		},
		{
			name:    "bad body",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: nominatim.ErrInvalidResponse,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse", r.URL.Path)
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.Equal(t, "-6.2", r.URL.Query().Get("lat"))
				assert.Equal(t, "106.816666", r.URL.Query().Get("lon"))
				assert.Equal(t, "roadside-test", r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := nominatim.NewClient(srv.URL+"/", "roadside-test", time.Second)
			got, err := client.Reverse(context.Background(), -6.2, 106.816666)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Reverse_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := nominatim.NewClient(srv.URL, "roadside-test", 200*time.Millisecond)
	_, err := client.Reverse(context.Background(), 1, 2)
	assert.ErrorIs(t, err, nominatim.ErrInternal)
}
