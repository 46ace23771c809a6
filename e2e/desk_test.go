//go:build e2e && unix

package e2e

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const bookingsFixture = `
[[booking]]
id = "bk-1"
guest = "Ada Lovelace"
room = "101"
nights = 2
amount_cents = 24000
status = "awaiting_payment"
hold_minutes = 15
created_at = 2026-01-01T10:00:00Z

[[booking]]
id = "bk-2"
guest = "Alan Turing"
room = "102"
nights = 1
amount_cents = 12000
status = "pending"
created_at = 2026-01-01T11:00:00Z

[[booking]]
id = "bk-3"
guest = "Grace Hopper"
room = "201"
nights = 3
amount_cents = 36000
status = "paid"
created_at = 2026-01-01T12:00:00Z
`

func startDesk(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)

	_, err := tf.CreateWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteBookings(bookingsFixture)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(path))
	require.True(t, tf.Ready(), "Should render the booking list")
	return tf
}

func TestDeskShowsBookings(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("Ada Lovelace"))
	require.True(t, tf.SeePlain("Grace Hopper"))
	require.True(t, tf.SeePlain("[ ] 0 selected (3 visible of 3)"))
	require.True(t, tf.SeePlain("14:5"), "Hold countdown should be ticking")
}

func TestTriStateHeader(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	tf.Select()
	require.True(t, tf.SeePlain("[-] 1 selected (3 visible of 3)"))

	tf.ToggleAll()
	require.True(t, tf.SeePlain("[x] 3 selected (3 visible of 3)"))

	tf.ToggleAll()
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "[ ] 0 selected") > strings.LastIndex(plain, "[x] 3 selected")
	}, 3*time.Second), "Toggling a fully selected list should clear it")
}

func TestFilteredToggleAll(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Filter("status:active"))
	require.True(t, tf.SeePlain("[Filter: status:active]"))
	require.True(t, tf.SeePlain("(2 visible of 3)"))

	tf.ToggleAll()
	require.True(t, tf.SeePlain("[x] 2 selected (2 visible of 3)"))
}

func TestPaySelection(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	tf.Select()
	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlain("2 selected"))

	tf.SendKeys(KeyPay)
	require.True(t, tf.SeePlain("paid: 2 booking(s)"))
}

func TestCancelNeedsConfirmation(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	tf.Select()
	tf.SendKeys(KeyCancel)
	require.True(t, tf.SeePlain("Cancel 1 booking(s)? (y/n)"))

	tf.SendKeys("y")
	require.True(t, tf.SeePlain("cancelled: 1 booking(s)"))
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startDesk(t)
	defer tf.Cleanup()

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.Quit()

	select {
	case err := <-done:
		require.NoError(t, err, "Process should exit cleanly with 'q'")
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit after 'q'")
	}
}

func TestFormatCountdownCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "format-countdown", "754").CombinedOutput()
	require.NoError(t, err)
	require.Equal(t, "12:34\n", string(out))
}
