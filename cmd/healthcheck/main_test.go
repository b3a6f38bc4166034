package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"Hello": "World"}, http.StatusOK)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusInternalServerError)
	}))
	defer failing.Close()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "healthy gateway", args: []string{"-a", healthy.URL}, want: 0},
		{name: "failing gateway", args: []string{"-a", failing.URL}, want: 1},
		{name: "invalid address", args: []string{"-a", "no-port"}, want: 1},
		{name: "unknown flag", args: []string{"-x"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestDefaultAddress(t *testing.T) {
	t.Run("fallback", func(t *testing.T) {
		t.Setenv("HEALTHCHECK_ADDRESS", "")
		t.Setenv("SERVER_ADDRESS", "")
		assert.Equal(t, ":8000", defaultAddress())
	})

	t.Run("server address", func(t *testing.T) {
		t.Setenv("HEALTHCHECK_ADDRESS", "")
		t.Setenv("SERVER_ADDRESS", ":9000")
		assert.Equal(t, ":9000", defaultAddress())
	})

	t.Run("healthcheck address wins", func(t *testing.T) {
		t.Setenv("HEALTHCHECK_ADDRESS", "http://gateway:8000")
		t.Setenv("SERVER_ADDRESS", ":9000")
		assert.Equal(t, "http://gateway:8000", defaultAddress())
	})
}
