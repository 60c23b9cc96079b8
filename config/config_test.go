package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkoesters/xdg/basedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/srlehn/fbcon/config"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/rgb"
)

func TestLoad(t *testing.T) {
	const conf = `
# fbcon settings
[Console]
Foreground = Yellow
Background=#102030
FontSize=14.5
Width=640
Height=480

[Boot]
Handoff=qemu.yaml
Mirror=true
Version=0.2.0
`
	c, err := config.Load(strings.NewReader(conf))
	require.NoError(t, err)
	assert.Equal(t, rgb.Yellow, c.Foreground)
	assert.Equal(t, rgb.FromRGB(0x10, 0x20, 0x30), c.Background)
	assert.Equal(t, 14.5, c.FontSize)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, `qemu.yaml`, c.Handoff)
	assert.True(t, c.Mirror)
	assert.Equal(t, `0.2.0`, c.Version)
	assert.Empty(t, c.Device)
	assert.Empty(t, c.Font)
}

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load(strings.NewReader(``))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(strings.NewReader("[Console]\nWidth=-3\nForeground=chartreuse\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Width`)
	assert.Contains(t, err.Error(), `Foreground`)

	_, err = config.Load(strings.NewReader("[Boot]\nMirror=maybe\n"))
	assert.Error(t, err)

	_, err = config.Load(strings.NewReader("[Console]\nnot a key value line\n"))
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	defer func(old string) { basedir.ConfigHome = old }(basedir.ConfigHome)
	basedir.ConfigHome = dir
	p, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `fbcon`, `fbcon.conf`), p)

	c, err := config.LoadFile(``)
	require.NoError(t, err, `a missing default file is fine`)
	assert.Equal(t, config.Default(), c)

	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("[Console]\nWidth=800\n"), 0o644))
	c, err = config.LoadFile(``)
	require.NoError(t, err)
	assert.Equal(t, 800, c.Width)

	_, err = config.LoadFile(filepath.Join(dir, `missing.conf`))
	assert.Error(t, err)
}

func TestConsoleOptions(t *testing.T) {
	c := config.Default()
	c.Foreground, c.Background = rgb.Green, rgb.Blue
	opts, err := c.ConsoleOptions()
	require.NoError(t, err)
	con, err := console.New(opts...)
	require.NoError(t, err)
	fg, bg := con.Colors()
	assert.Equal(t, rgb.Green, fg)
	assert.Equal(t, rgb.Blue, bg)
	assert.Equal(t, `basic-8x16`, con.Font().Name())
}

func TestLoadFontTrueType(t *testing.T) {
	p := filepath.Join(t.TempDir(), `mono.ttf`)
	require.NoError(t, os.WriteFile(p, gomono.TTF, 0o644))
	c := config.Default()
	c.Font = p
	f, err := c.LoadFont()
	require.NoError(t, err)
	assert.Equal(t, `mono.ttf`, f.Name())
	assert.Equal(t, 8, f.Width())
	assert.Equal(t, 16, f.Height())

	c.Font = filepath.Join(t.TempDir(), `missing.psf`)
	_, err = c.LoadFont()
	assert.Error(t, err)
}
