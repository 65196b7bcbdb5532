package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: marketplace\n")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, conf.Server.Http)
	assert.Equal(t, DriverSqlite, conf.Database.Driver)
	assert.Equal(t, "marketplace.db", conf.Database.Source())
	assert.Equal(t, "marketplace_token", conf.Jwt.CookieName)
	assert.Equal(t, int64(16<<20), conf.Upload.MaxSize)
	assert.Equal(t, "uploads", conf.Upload.PostDir)
	assert.Equal(t, 587, conf.Mail.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: from-file\nmail:\n  host: smtp.example.com\n")

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("MAIL_USERNAME", "shop@example.com")
	t.Setenv("MAIL_PASSWORD", "app-password")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Jwt.Secret)
	assert.Equal(t, "shop@example.com", conf.Mail.Username)
	assert.Equal(t, "shop@example.com", conf.Mail.From)
	assert.Equal(t, "app-password", conf.Mail.Password)
}

func TestDatabase_MySQLSource(t *testing.T) {
	d := &Database{Driver: DriverMySQL, Host: "db", Port: 3306, Username: "root", Password: "pw", Database: "blackout"}
	assert.Equal(t, "root:pw@tcp(db:3306)/blackout?charset=utf8mb4&parseTime=True&loc=Local", d.Source())

	d.Dsn = "custom"
	assert.Equal(t, "custom", d.Source())
}

func TestLoad_CookieNamePerApp(t *testing.T) {
	social, err := Load(writeConfig(t, "app:\n  name: social\n"))
	require.NoError(t, err)
	market, err := Load(writeConfig(t, "app:\n  name: market\n"))
	require.NoError(t, err)
	assert.NotEqual(t, social.Jwt.CookieName, market.Jwt.CookieName)

	shipped := map[string]string{}
	for _, app := range []string{"social", "market"} {
		conf, err := Load(filepath.Join("..", "configs", app+".dev.yaml"))
		require.NoError(t, err)
		shipped[app] = conf.Jwt.CookieName
	}
	assert.Equal(t, "social_token", shipped["social"])
	assert.Equal(t, "market_token", shipped["market"])

	conf, err := Load(writeConfig(t, "jwt:\n  cookie_name: sid\n"))
	require.NoError(t, err)
	assert.Equal(t, "sid", conf.Jwt.CookieName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
