package server_test

import (
	"testing"

	"lab-launcher/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port int
		want string
	}{
		{"Default", server.DefaultPort, ":8080"},
		{"Custom", 9090, ":9090"},
		{"Ephemeral", 0, ":0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_URL(t *testing.T) {
	c := server.Config{Port: server.DefaultPort}
	assert.Equal(t, "http://localhost:8080", c.URL())
}
