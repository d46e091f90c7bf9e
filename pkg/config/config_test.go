package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/ssargent/promash/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "./recipes", config.ArchiveDir)
	assert.Equal(t, "table", config.Format)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Bind)
	assert.Equal(t, "auto", config.Server.APIKey)
	assert.Equal(t, []int{0}, config.Decode.Terminators)
	assert.Equal(t, CharsetWindows1252, config.Decode.Charset)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Encoding)
}

func TestGenerateSecureKey(t *testing.T) {
	t.Run("generate 32 byte key", func(t *testing.T) {
		key, err := GenerateSecureKey(32)
		require.NoError(t, err)
		assert.Len(t, key, 64) // 32 bytes = 64 hex characters

		_, err = hex.DecodeString(key)
		assert.NoError(t, err)
	})

	t.Run("generate different keys", func(t *testing.T) {
		key1, err := GenerateSecureKey(16)
		require.NoError(t, err)
		key2, err := GenerateSecureKey(16)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})

	t.Run("zero length", func(t *testing.T) {
		key, err := GenerateSecureKey(0)
		require.NoError(t, err)
		assert.Empty(t, key)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "promash_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := &Config{
			ArchiveDir: "/custom/recipes",
			Format:     "json",
			Server: Server{
				Port:   9000,
				Bind:   "0.0.0.0",
				APIKey: "test-api-key",
			},
			Decode: Decode{
				Terminators: []int{0, 255},
				Charset:     CharsetRaw,
			},
			Logging: Logging{
				Level:    "debug",
				Encoding: "json",
			},
		}

		err = SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "promash_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "partial.yaml")
		err = os.WriteFile(configPath, []byte("archive_dir: /srv/recipes\nserver:\n  port: 9100\n"), 0644)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "/srv/recipes", loadedConfig.ArchiveDir)
		assert.Equal(t, 9100, loadedConfig.Server.Port)
		assert.Equal(t, "127.0.0.1", loadedConfig.Server.Bind)
		assert.Equal(t, CharsetWindows1252, loadedConfig.Decode.Charset)
		assert.Equal(t, "info", loadedConfig.Logging.Level)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "promash_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "invalid.yaml")
		err = os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "promash_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	config := DefaultConfig()

	err = SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestBootstrapConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "promash_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	archiveDir := "/custom/archive/dir"

	config, err := BootstrapConfig(configPath, archiveDir)
	require.NoError(t, err)

	assert.Equal(t, archiveDir, config.ArchiveDir)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Bind)
	assert.Equal(t, "info", config.Logging.Level)

	assert.NotEqual(t, "auto", config.Server.APIKey)
	_, err = hex.DecodeString(config.Server.APIKey)
	assert.NoError(t, err)

	assert.True(t, ConfigExists(configPath))

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestBootstrapConfigDefaultArchiveDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "promash_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	config, err := BootstrapConfig(filepath.Join(tmpDir, "config.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, "./recipes", config.ArchiveDir)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "promash")
	assert.Contains(t, path, ".yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "promash_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err = os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := &Config{
		ArchiveDir: "/test/recipes",
		Format:     "attrs",
		Server: Server{
			Port:   9999,
			Bind:   "localhost",
			APIKey: "api-key-456",
		},
		Decode: Decode{
			Terminators: []int{0, 10},
			Charset:     CharsetISO88591,
		},
		Logging: Logging{
			Level:    "warn",
			Encoding: "console",
		},
	}

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "archive_dir: /test/recipes")
	assert.Contains(t, string(data), "api_key: api-key-456")

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "promash_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// A regular file where a directory is expected
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err = SaveConfig(DefaultConfig(), filepath.Join(blocker, "nested", "config.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}

func TestCodecOptions(t *testing.T) {
	// 0xf6 is o-umlaut in Windows-1252 and ISO-8859-1, division sign in CP437
	raw := "K\xf6lsch"

	testCases := []struct {
		name    string
		decode  Decode
		want    string
		wantErr string
	}{
		{name: "default charset", decode: Decode{Terminators: []int{0}}, want: "Kölsch"},
		{name: "windows-1252", decode: Decode{Charset: CharsetWindows1252}, want: "Kölsch"},
		{name: "iso-8859-1 upper case", decode: Decode{Charset: "ISO-8859-1"}, want: "Kölsch"},
		{name: "cp437", decode: Decode{Charset: CharsetCP437}, want: "K÷lsch"},
		{name: "raw", decode: Decode{Charset: CharsetRaw}, want: raw},
		{name: "unsupported charset", decode: Decode{Charset: "ebcdic"}, wantErr: "unsupported charset"},
		{name: "terminator out of range", decode: Decode{Terminators: []int{256}}, wantErr: "invalid terminator"},
		{name: "negative terminator", decode: Decode{Terminators: []int{-1}}, wantErr: "invalid terminator"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Decode = tc.decode

			opts, err := cfg.CodecOptions()
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)

			data := blankRecipe(t)
			// Header.Name is the first field of the file
			copy(data, raw+"\x00")

			decoded, err := codec.NewRecipeCodec(opts...).Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tc.want, decoded.Header.Name)
		})
	}
}

func TestCodecOptionsTerminators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decode.Terminators = []int{0, '|'}
	cfg.Decode.Charset = CharsetRaw

	opts, err := cfg.CodecOptions()
	require.NoError(t, err)

	data := blankRecipe(t)
	copy(data, "Pale|Ale\x00")

	decoded, err := codec.NewRecipeCodec(opts...).Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Pale", decoded.Header.Name)
}

func blankRecipe(t *testing.T) []byte {
	t.Helper()
	f := &codec.File{}
	f.Mash.RecipeSimpleMashType = codec.MashSingleStep
	data, err := codec.NewRecipeCodec().Encode(f)
	require.NoError(t, err)
	return data
}
