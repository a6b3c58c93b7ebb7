package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocipher/internal/cipher"
	"github.com/idelchi/gocipher/internal/config"
)

func valid() config.Config {
	return config.Config{Cipher: "caesar", Key: "3", Parallel: 4}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
		fails   bool
		msg     string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "uppercase cipher", mutate: func(c *config.Config) { c.Cipher = "Vigenere" }},
		{
			name:    "unknown cipher",
			mutate:  func(c *config.Config) { c.Cipher = "enigma" },
			wantErr: config.ErrUnknownArgument,
			msg:     "--cipher must be one of caesar, playfair, vigenere",
		},
		{
			name:    "missing cipher",
			mutate:  func(c *config.Config) { c.Cipher = "" },
			wantErr: config.ErrUnknownArgument,
			msg:     "--cipher is a required field",
		},
		{name: "no workers", mutate: func(c *config.Config) { c.Parallel = 0 }, fails: true, msg: "--parallel must be 1 or greater"},
		{name: "key and key file", mutate: func(c *config.Config) { c.KeyFile = "key.txt" }, fails: true, msg: "--key is mutually exclusive"},
		{name: "key file alone", mutate: func(c *config.Config) { c.Key, c.KeyFile = "", "key.txt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.fails:
				require.Error(t, err)
				assert.NotErrorIs(t, err, config.ErrUnknownArgument)
			default:
				require.NoError(t, err)
			}

			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestModeAndType(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.Equal(t, cipher.Encrypt, cfg.Mode())

	cfg.Decrypt = true
	assert.Equal(t, cipher.Decrypt, cfg.Mode())

	cfg.Cipher = "playfair"
	typ, err := cfg.Type()
	require.NoError(t, err)
	assert.Equal(t, cipher.Playfair, typ)

	cfg.Cipher = "rot13"
	_, err = cfg.Type()
	require.ErrorIs(t, err, config.ErrUnknownArgument)
	require.ErrorIs(t, err, cipher.ErrUnknownType)
}

func TestResolveSettingsFile(t *testing.T) {
	dir := t.TempDir()

	settings := filepath.Join(dir, "settings.jsonc")
	require.NoError(t, os.WriteFile(settings, []byte(`{
		// defaults for this project
		"cipher": "vigenere",
		"key-file": "`+filepath.ToSlash(filepath.Join(dir, "key.txt"))+`",
		"parallel": 2, /* trailing comment */
	}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "key.txt"), []byte("LEMON\n"), 0o600))

	v := config.NewViper()
	v.SetDefault("cipher", "caesar")
	v.SetDefault("parallel", 8)
	v.Set("settings", settings)

	t.Setenv("GOCIPHER_PARALLEL", "3")

	cfg, err := config.Resolve(v)
	require.NoError(t, err)

	assert.Equal(t, "vigenere", cfg.Cipher)
	assert.Equal(t, "LEMON", cfg.Key)
	assert.Equal(t, 3, cfg.Parallel)
}

func TestResolveMissingSettingsFile(t *testing.T) {
	t.Parallel()

	v := config.NewViper()
	v.Set("settings", filepath.Join(t.TempDir(), "missing.jsonc"))

	_, err := config.Resolve(v)
	require.ErrorIs(t, err, os.ErrNotExist)
}
