package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

func TestParseDerivationPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected device.DerivationPath
	}{
		{
			name: "relative_hardened",
			path: "44'/111'/0'/0/0",
			expected: device.DerivationPath{
				device.HardenedKeyStart + 44,
				device.HardenedKeyStart + 111,
				device.HardenedKeyStart,
				0,
				0,
			},
		},
		{
			name: "absolute",
			path: "m/44'/111'/2'/0/1",
			expected: device.DerivationPath{
				device.HardenedKeyStart + 44,
				device.HardenedKeyStart + 111,
				device.HardenedKeyStart + 2,
				0,
				1,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := device.ParseDerivationPath(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.expected, path)
		})
	}
}

func TestFailingParseDerivationPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		expectedError error
	}{
		{
			name:          "empty",
			path:          "",
			expectedError: device.ErrNullDerivationPath,
		},
		{
			name:          "leading_slash",
			path:          "/44'/111'/0'/0/0",
			expectedError: device.ErrMalformedDerivationPath,
		},
		{
			name:          "trailing_slash",
			path:          "44'/111'/0'/0/0/",
			expectedError: device.ErrMalformedDerivationPath,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := device.ParseDerivationPath(tt.path)
			require.ErrorIs(t, err, tt.expectedError)
			require.Nil(t, path)
		})
	}
}

func TestDerivationPathString(t *testing.T) {
	t.Parallel()

	path, err := device.ParseDerivationPath("44'/111'/0'/0/7")
	require.NoError(t, err)
	require.Equal(t, "m/44'/111'/0'/0/7", path.String())
}
