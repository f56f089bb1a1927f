package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"hairpin/internal/cli"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Enough records that the scan is still underway when cancelled.
	fn := write(t, "cancel_big.fa", randomFASTA(200000, 1))
	t.Setenv("HOME", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := cli.RunContext(ctx, []string{"scan", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
