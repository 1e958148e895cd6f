package helpers

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	Component(logger, "notification").Info("hello")
	require.Equal(t, "notification", hook.LastEntry().Data["component"])

	entry := Component(nil, "http")
	require.NotNil(t, entry)
	require.Equal(t, "http", entry.Data["component"])
}
