package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestServiceHookStampsField(t *testing.T) {
	hook := &serviceHook{service: "users-api"}

	entry := &logrus.Entry{Data: logrus.Fields{}, Message: "login succeeded"}
	require.NoError(t, hook.Fire(entry))

	require.Equal(t, "users-api", entry.Data["service"])
	// The message itself stays untouched.
	require.Equal(t, "login succeeded", entry.Message)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	require.Equal(t, logrus.InfoLevel, logLevelFromEnv())

	t.Setenv("LOG_LEVEL", "DEBUG")
	require.Equal(t, logrus.DebugLevel, logLevelFromEnv())

	t.Setenv("LOG_LEVEL", "nonsense")
	require.Equal(t, logrus.InfoLevel, logLevelFromEnv())
}
