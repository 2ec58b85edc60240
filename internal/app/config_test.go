package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr string
	}{
		{
			name: "defaults",
			want: Config{OutputPath: "test-image.png", FontSize: 13},
		},
		{
			name: "overrides",
			env: map[string]string{
				EnvOutput:   "/tmp/x.png",
				EnvFont:     "/fonts/a.ttf",
				EnvFontSize: "18.5",
				EnvDebug:    "true",
			},
			want: Config{OutputPath: "/tmp/x.png", FontPath: "/fonts/a.ttf", FontSize: 18.5, Debug: true},
		},
		{
			name:    "bad debug",
			env:     map[string]string{EnvDebug: "maybe"},
			wantErr: EnvDebug + " must be a boolean",
		},
		{
			name:    "bad font size",
			env:     map[string]string{EnvFontSize: "big"},
			wantErr: EnvFontSize + " must be a number",
		},
		{
			name:    "negative font size",
			env:     map[string]string{EnvFontSize: "-3"},
			wantErr: EnvFontSize + " must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvOutput, EnvFont, EnvFontSize, EnvDebug} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := DefaultConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
