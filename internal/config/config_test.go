package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const key32 = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GATEKEEPER_DSN", "postgres://localhost/gatekeeper")
	t.Setenv("GATEKEEPER_SIGNING_KEY", key32)
	t.Setenv("GATEKEEPER_MASTER_SECRET", "master")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8443", c.Addr)
	require.Equal(t, 30*time.Minute, c.AccessTTL)
	require.Equal(t, 7*24*time.Hour, c.RefreshTTL)
	require.Equal(t, 24*time.Hour, c.ResetTTL)
	require.Equal(t, 15*time.Second, c.NotifyTimeout)
	require.Equal(t, 5, c.LoginMaxFails)
	require.Equal(t, "admin", c.AdminUsername)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GATEKEEPER_DSN", "postgres://db/gk")
	t.Setenv("GATEKEEPER_SIGNING_KEY", key32)
	t.Setenv("GATEKEEPER_MASTER_SECRET", "master")
	t.Setenv("GATEKEEPER_ACCESS_TTL", "5m")
	t.Setenv("GATEKEEPER_LOGIN_MAX_FAILS", "3")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, c.AccessTTL)
	require.Equal(t, 3, c.LoginMaxFails)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("GATEKEEPER_ACCESS_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := Config{SigningKey: "short", AccessTTL: time.Minute, RefreshTTL: time.Hour, ResetTTL: time.Hour,
		NotifyTimeout: time.Second, LoginMaxFails: 0, TLSCert: "cert.pem", AdminEmail: "admin"}

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"GATEKEEPER_DSN", "GATEKEEPER_SIGNING_KEY", "GATEKEEPER_MASTER_SECRET",
		"GATEKEEPER_LOGIN_MAX_FAILS", "GATEKEEPER_TLS_CERT", "GATEKEEPER_ADMIN_EMAIL"} {
		require.True(t, strings.Contains(msg, want), "missing %s in %q", want, msg)
	}
}
