package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetErrorInfoKnownCode(t *testing.T) {
	info, ok := GetErrorInfo(TAB001)
	require.True(t, ok)
	require.Equal(t, "table", info.Phase)
}

func TestGetErrorInfoUnknownCode(t *testing.T) {
	_, ok := GetErrorInfo("XYZ999")
	require.False(t, ok)
}

func TestIsFatalOnlyForCompilerPhase(t *testing.T) {
	require.True(t, IsFatal(CMP001))
	require.False(t, IsFatal(TAB001))
	require.False(t, IsFatal(LAT001))
	require.False(t, IsFatal(CLI001))
}

func TestGetErrorInfoCLICode(t *testing.T) {
	info, ok := GetErrorInfo(CLI001)
	require.True(t, ok)
	require.Equal(t, "cli", info.Phase)
}
