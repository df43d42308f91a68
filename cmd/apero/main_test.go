package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/apero/internal/client"
	"github.com/GustavoCaso/apero/internal/config"
	"github.com/GustavoCaso/apero/internal/crypto"
	"github.com/GustavoCaso/apero/internal/provisioning"
	"github.com/GustavoCaso/apero/internal/server"
	"github.com/GustavoCaso/apero/internal/store"
	"github.com/GustavoCaso/apero/internal/ui"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apero.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGenkeysSecretbox(t *testing.T) {
	out, err := execute(t, "", "genkeys", "--secretbox")
	require.NoError(t, err)

	var keys struct {
		PSKey crypto.SecretBoxKey `toml:"ps_key"`
	}
	_, err = toml.Decode(out, &keys)
	require.NoError(t, err)
	require.True(t, keys.PSKey.IsValid())
}

func TestGenkeysKeyPair(t *testing.T) {
	out, err := execute(t, "", "genkeys", "--keypair")
	require.NoError(t, err)

	var keys struct {
		Private crypto.PrivateKey `toml:"sign_private_key"`
		Public  crypto.PublicKey  `toml:"sign_public_key"`
	}
	_, err = toml.Decode(out, &keys)
	require.NoError(t, err)
	require.True(t, keys.Private.IsValid())
	require.Equal(t, keys.Public, keys.Private.Public())
}

func TestGenkeysRequiresKind(t *testing.T) {
	_, err := execute(t, "", "genkeys")
	require.Error(t, err)

	_, err = execute(t, "", "genkeys", "--secretbox", "--keypair")
	require.Error(t, err)
}

func TestSecretbox(t *testing.T) {
	key, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)

	sealed, err := execute(t, "", "secretbox", "--key", key.String(), "--seal", "hello world")
	require.NoError(t, err)

	opened, err := execute(t, "", "secretbox", "--key", key.String(), "--open", strings.TrimSpace(sealed))
	require.NoError(t, err)
	require.Equal(t, "hello world\n", opened)

	other, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)
	_, err = execute(t, "", "secretbox", "--key", other.String(), "--open", strings.TrimSpace(sealed))
	require.ErrorIs(t, err, crypto.ErrUnableToOpen)
}

func TestSecretboxKeyFromConfig(t *testing.T) {
	key, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)
	path := writeConfig(t, fmt.Sprintf("[client]\nps_key = %q\n", key))

	sealed, err := execute(t, "", "--config", path, "secretbox", "--seal", "from config")
	require.NoError(t, err)

	opened, err := execute(t, "", "secretbox", "--key", key.String(), "--open", strings.TrimSpace(sealed))
	require.NoError(t, err)
	require.Equal(t, "from config\n", opened)
}

func TestSecretboxWithoutKey(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"error\"\n")

	_, err := execute(t, "", "--config", path, "secretbox", "--seal", "hello")
	require.Error(t, err)

	_, err = execute(t, "", "--config", path, "secretbox", "hello")
	require.Error(t, err)
}

func TestProvisionRestore(t *testing.T) {
	key, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)
	data, err := provisioning.New(key)
	require.NoError(t, err)
	want := fmt.Sprintf("ps_key = %q\n", key)

	out, err := execute(t, "", append([]string{"provision", "restore"}, data.Mnemonic...)...)
	require.NoError(t, err)
	require.Equal(t, want, out)

	out, err = execute(t, "", "provision", "restore", strings.Join(data.Hex[:], " "))
	require.NoError(t, err)
	require.Equal(t, want, out)

	_, err = execute(t, "", "provision", "restore", "abandon", "ability")
	require.Error(t, err)
}

func TestEntries(t *testing.T) {
	psKey, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)
	pub, priv, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	serverConf := config.ServerConfig{
		ListenAddr:    "127.0.0.1:0",
		PSKey:         psKey,
		SignPublicKey: pub,
	}
	httpServer := httptest.NewServer(server.New(serverConf, store.NewMemStore(), zerolog.Nop()))
	t.Cleanup(httpServer.Close)

	path := writeConfig(t, fmt.Sprintf(
		"[client]\nendpoint = %q\nps_key = %q\nsign_private_key = %q\n\n[log]\nlevel = \"error\"\n",
		httpServer.URL, psKey, priv,
	))

	first, err := execute(t, "hello", "--config", path, "copy")
	require.NoError(t, err)
	second, err := execute(t, "world", "--config", path, "copy")
	require.NoError(t, err)

	out, err := execute(t, "", "--config", path, "list")
	require.NoError(t, err)
	require.Equal(t, first+second, out)

	out, err = execute(t, "", "--config", path, "paste", strings.TrimSpace(first))
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	out, err = execute(t, "", "--config", path, "paste")
	require.NoError(t, err)
	require.Equal(t, "world", out)

	out, err = execute(t, "", "--config", path, "move")
	require.NoError(t, err)
	require.Equal(t, "world", out)

	out, err = execute(t, "", "--config", path, "move", strings.TrimSpace(first))
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	_, err = execute(t, "", "--config", path, "paste")
	require.ErrorIs(t, err, client.ErrNotFound)

	_, err = execute(t, "", "--config", path, "paste", "not-an-id")
	require.Error(t, err)
}

func TestEntriesInvalidClientConfig(t *testing.T) {
	path := writeConfig(t, "[client]\nendpoint = \"ftp://example.com\"\n")

	_, err := execute(t, "", "--config", path, "list")
	require.Error(t, err)
}

func TestServeInvalidConfig(t *testing.T) {
	path := writeConfig(t, "[server]\nlisten_addr = \"localhost\"\n")

	_, err := execute(t, "", "--config", path, "serve")
	require.Error(t, err)
}

func TestProvisionScreen(t *testing.T) {
	key, err := crypto.NewSecretBoxKey()
	require.NoError(t, err)
	data, err := provisioning.New(key)
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, ui.InitialModel(data), teatest.WithInitialTermSize(300, 100))
	waitForString(t, tm, data.Mnemonic[0])
	tm.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune("q"),
	})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func waitForString(t *testing.T, tm *teatest.TestModel, s string) {
	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), s)
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}
