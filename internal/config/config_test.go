package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinio() *Config {
	return &Config{
		Port:             "3000",
		AppEnv:           "development",
		StorageDriver:    DriverMinio,
		StorageEndpoint:  "http://localhost:9000",
		StorageAccessKey: "minioadmin",
		StorageSecretKey: "minioadmin",
		StorageBucket:    "photos",
		StorageRegion:    "us-east-1",
	}
}

func emptyEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("STORAGE_ENDPOINT", "https://s3.example.com")
	t.Setenv("STORAGE_ACCESS_KEY", "ak")
	t.Setenv("STORAGE_SECRET_KEY", "sk")
	t.Setenv("STORAGE_BUCKET", "pics")
	t.Setenv("STORAGE_PUBLIC_BASE", "https://cdn.example.com/")

	cfg, err := Load(emptyEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
	assert.Equal(t, DriverS3, cfg.StorageDriver)
	assert.Equal(t, "s3.example.com", cfg.StorageHost())
	assert.True(t, cfg.StorageUseSSL())
	assert.Equal(t, "https://cdn.example.com", cfg.PublicBase())
}

func TestLoad_FailsFastOnMissingStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("STORAGE_ENDPOINT", "http://localhost:9000")
	t.Setenv("STORAGE_BUCKET", "photos")
	t.Setenv("STORAGE_ACCESS_KEY", " ")
	t.Setenv("STORAGE_SECRET_KEY", " ")

	_, err := Load(emptyEnvFile(t))
	require.ErrorIs(t, err, ErrMissing)
	assert.Contains(t, err.Error(), "STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid minio", mutate: func(c *Config) {}},
		{name: "valid s3", mutate: func(c *Config) { c.StorageDriver = DriverS3 }},
		{name: "memory needs nothing", mutate: func(c *Config) {
			*c = Config{Port: "3000", StorageDriver: DriverMemory}
		}},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: "invalid PORT"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "invalid PORT"},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "ftp" }, wantErr: "invalid STORAGE_DRIVER"},
		{name: "missing bucket", mutate: func(c *Config) { c.StorageBucket = "" }, wantErr: "STORAGE_BUCKET"},
		{name: "endpoint without scheme", mutate: func(c *Config) { c.StorageEndpoint = "localhost:9000" }, wantErr: "invalid STORAGE_ENDPOINT"},
		{name: "endpoint wrong scheme", mutate: func(c *Config) { c.StorageEndpoint = "ftp://host" }, wantErr: "invalid STORAGE_ENDPOINT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validMinio()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPublicBase(t *testing.T) {
	cfg := validMinio()
	assert.Equal(t, "http://localhost:9000/photos", cfg.PublicBase())
	assert.Equal(t, "localhost:9000", cfg.StorageHost())
	assert.False(t, cfg.StorageUseSSL())

	cfg.StorageEndpoint = "http://localhost:9000/"
	assert.Equal(t, "http://localhost:9000/photos", cfg.PublicBase())

	mem := &Config{Port: "3000", StorageDriver: DriverMemory}
	assert.Equal(t, "http://localhost:3000/photos", mem.PublicBase())
	assert.Equal(t, "/photos", mem.PublicPath())

	mem.StoragePublicBase = "https://cdn.example.com/"
	assert.Equal(t, "", mem.PublicPath())
}

// unsetEnv clears key for the duration of the test so a dotenv file may set it.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "STORAGE_DRIVER")
	unsetEnv(t, "PORT")
	path := filepath.Join(t.TempDir(), "photos.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DRIVER=memory\nPORT=4010\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, ":4010", cfg.Addr())
}

func TestLoad_NamedEnvFileMustExist(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	_, err := Load(filepath.Join(t.TempDir(), "typo.env"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "load env file")
}
