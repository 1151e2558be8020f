package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Etymonline: EtymonlineConfig{
			BaseURL: DefaultBaseURL,
		},
		Lookup: LookupConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
		Dictionary: DictionaryConfig{
			WordsFile: DefaultWordsFile,
		},
		Display: DisplayConfig{
			Width: DefaultWidth,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "no config file uses defaults",
			want: defaultConfig(),
		},
		{
			name: "config file in working directory",
			configContent: `etymonline:
  base_url: https://etymonline.example.com
  timeout: 10s
lookup:
  max_attempts: 3
  retry_delay: 250ms
dictionary:
  words_file: /tmp/words
display:
  width: 120
`,
			want: &Config{
				Etymonline: EtymonlineConfig{
					BaseURL: "https://etymonline.example.com",
					Timeout: 10 * time.Second,
				},
				Lookup: LookupConfig{
					MaxAttempts: 3,
					RetryDelay:  250 * time.Millisecond,
				},
				Dictionary: DictionaryConfig{
					WordsFile: "/tmp/words",
				},
				Display: DisplayConfig{
					Width: 120,
				},
			},
		},
		{
			name: "explicit config file keeps defaults for missing keys",
			configContent: `lookup:
  max_attempts: 7
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Lookup.MaxAttempts = 7
				return cfg
			}(),
		},
		{
			name: "environment variables override defaults",
			env: map[string]string{
				"ETYM_BASE_URL":   "http://localhost:8080",
				"ETYM_WORDS_FILE": "/opt/words",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Etymonline.BaseURL = "http://localhost:8080"
				cfg.Dictionary.WordsFile = "/opt/words"
				return cfg
			}(),
		},
		{
			name: "invalid YAML format",
			configContent: `lookup:
  max_attempts: 3
  invalid yaml format here [[[
`,
			useExplicitPath: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "zero max attempts",
			configContent: `lookup:
  max_attempts: 0
`,
			useExplicitPath: true,
			wantErrorContains: []string{
				"invalid configuration",
				"max_attempts must be 1 or greater",
			},
		},
		{
			name: "base url without http scheme",
			configContent: `etymonline:
  base_url: ftp://etymonline.example.com
`,
			useExplicitPath: true,
			wantErrorContains: []string{
				"etymonline.base_url must be an http or https URL",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("HOME", tempDir)
			t.Setenv("ETYM_BASE_URL", "")
			t.Setenv("ETYM_WORDS_FILE", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "etym.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()
			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_Validate(t *testing.T) {
	loader, err := NewConfigLoader("")
	require.NoError(t, err)

	cfg := defaultConfig()
	assert.NoError(t, loader.Validate(cfg))

	cfg.Display.Width = -1
	cfg.Dictionary.WordsFile = ""
	err = loader.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be 0 or greater")
	assert.Contains(t, err.Error(), "words_file is a required field")
}
