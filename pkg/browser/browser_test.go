package browser

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExecPath_EnvOverride(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("STYLELAB_CHROME", exe)

	got, err := FindExecPath()
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestFindExecPath_EnvMissingFile(t *testing.T) {
	t.Setenv("STYLELAB_CHROME", filepath.Join(t.TempDir(), "nope"))

	_, err := FindExecPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STYLELAB_CHROME")
}

func TestFindExecPath_NothingOnPath(t *testing.T) {
	if _, err := os.Stat(macChrome); err == nil {
		t.Skip("system chrome installed")
	}
	t.Setenv("STYLELAB_CHROME", "")
	t.Setenv("PATH", t.TempDir())

	_, err := FindExecPath()
	assert.ErrorIs(t, err, ErrNoBrowser)
}

func TestNotFoundWraps(t *testing.T) {
	err := notFound(".missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), ".missing")
}

func TestJSString(t *testing.T) {
	assert.Equal(t, `".navbar a"`, jsString(".navbar a"))
	assert.Equal(t, `"a[href=\"#x\"]"`, jsString(`a[href="#x"]`))
	assert.Equal(t, `["color","transform"]`, jsValue([]string{"color", "transform"}))
}

// launchForTest starts a real browser or skips.
func launchForTest(t *testing.T) *Session {
	t.Helper()
	if testing.Short() {
		t.Skip("browser tests skipped in -short mode")
	}
	exe, err := FindExecPath()
	if err != nil {
		t.Skipf("no browser: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	s, err := Launch(ctx, Options{ExecPath: exe, Headless: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var testPage = "data:text/html," + url.PathEscape(`<style>
#box{width:100px;height:50px;background:rgb(1, 2, 3);transition:background-color 0.1s}
#box:hover{background:rgb(4, 5, 6)}
</style><div id="box"></div><button id="b">go</button>`)

func TestPage_Live(t *testing.T) {
	s := launchForTest(t)
	require.True(t, s.Alive())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	p, err := s.OpenPage(ctx, testPage)
	require.NoError(t, err)
	defer p.Close()

	got, err := p.ComputedStyle("#box", "width", "backgroundColor", "notAProperty")
	require.NoError(t, err)
	assert.Equal(t, "100px", got["width"])
	assert.Equal(t, "rgb(1, 2, 3)", got["backgroundColor"])
	assert.Equal(t, "", got["notAProperty"])

	require.NoError(t, p.Hover("#box"))
	require.NoError(t, p.Settle(300*time.Millisecond))
	got, err = p.ComputedStyle("#box", "backgroundColor")
	require.NoError(t, err)
	assert.Equal(t, "rgb(4, 5, 6)", got["backgroundColor"])

	require.NoError(t, p.Focus("#b"))
	got, err = p.ComputedStyle("#b", FocusedProp)
	require.NoError(t, err)
	assert.Equal(t, "true", got[FocusedProp])

	require.NoError(t, p.ApplyInlineStyle("#b", "active", map[string]string{"color": "red"}))
	got, err = p.InlineStyle("#b", "color")
	require.NoError(t, err)
	assert.Equal(t, "red", got["color"])

	_, err = p.ComputedStyle("#missing", "color")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, p.Click("#missing"), ErrNotFound)
	assert.ErrorIs(t, p.Hover("#missing"), ErrNotFound)
}

func TestSession_CloseIdempotent(t *testing.T) {
	s := launchForTest(t)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
	assert.False(t, s.Alive())

	_, err := s.OpenPage(context.Background(), testPage)
	assert.ErrorIs(t, err, ErrClosed)
}
