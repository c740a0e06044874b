package soundboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func fastReset() []Option {
	return []Option{
		WithSettleDelay(0),
		WithBootDelay(0),
		WithBannerDelay(0),
	}
}

func TestResetWithoutPin(t *testing.T) {
	drv, err := New(NewMockPort())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := drv.Reset(context.Background()); !errors.Is(err, ErrNoResetPin) {
		t.Errorf("error = %v, want ErrNoResetPin", err)
	}
}

func TestResetSequence(t *testing.T) {
	board := newSimBoard(160, 1)
	board.Emit("VS1000 OGG MP3 Player")
	board.Emit("Adafruit FX Sound Board 9/8/14")
	board.Emit("FAT type: 16")
	board.Emit("Files found: 10")

	pin := &MockPin{}
	store := NewMockStore()
	store.values[0] = 95
	logger := &MockLogger{}

	opts := append(fastReset(),
		WithResetPin(pin),
		WithPersistentVolume(store, 0),
		WithLogger(logger),
	)
	drv, err := New(board, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := drv.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := strings.Join(pin.ops, " "); got != "output low input" {
		t.Errorf("pin ops = %q, want \"output low input\"", got)
	}
	if store.reads != 1 {
		t.Errorf("store reads = %d, want 1", store.reads)
	}
	if len(store.writes) != 0 {
		t.Errorf("store writes = %v, want none during restore", store.writes)
	}
	if drv.RawVolume() != 95 {
		t.Errorf("raw volume = %d, want restored 95", drv.RawVolume())
	}
	if board.raw != 95 {
		t.Errorf("board raw = %d, want 95", board.raw)
	}
	for _, msg := range logger.infoMsgs {
		if msg == "banner tag not found" {
			t.Error("tag was present but reported missing")
		}
	}
}

func TestResetBannerTagMissing(t *testing.T) {
	board := newSimBoard(100, 1)
	board.Emit("some other firmware")
	board.Emit("booted")

	logger := &MockLogger{}
	opts := append(fastReset(),
		WithResetPin(&MockPin{}),
		WithBannerLines(2),
		WithLogger(logger),
	)
	drv, err := New(board, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A foreign banner is reported but never fails the reset.
	if err := drv.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	found := false
	for _, msg := range logger.infoMsgs {
		if msg == "banner tag not found" {
			found = true
		}
	}
	if !found {
		t.Error("expected a log entry for the missing banner tag")
	}
}

func TestResetQuietBanner(t *testing.T) {
	board := newSimBoard(100, 1)

	opts := append(fastReset(), WithResetPin(&MockPin{}))
	drv, err := New(board, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No banner at all behaves like a slow boot: the reset still
	// completes once the volume probe answers.
	if err := drv.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if drv.RawVolume() != 100 {
		t.Errorf("raw volume = %d, want probed 100", drv.RawVolume())
	}
}

func TestResetPinFailure(t *testing.T) {
	board := newSimBoard(100, 1)
	pin := &MockPin{failOn: "output"}

	opts := append(fastReset(), WithResetPin(pin))
	drv, err := New(board, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = drv.Reset(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(pin.ops) != 1 {
		t.Errorf("pin ops = %v, want to stop after the failed one", pin.ops)
	}
}

func TestResetCancelledBeforePinTouch(t *testing.T) {
	pin := &MockPin{}
	opts := append(fastReset(), WithResetPin(pin))
	drv, err := New(newSimBoard(100, 1), opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := drv.Reset(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(pin.ops) != 0 {
		t.Errorf("pin ops = %v, want none after cancellation", pin.ops)
	}
}

func TestResetCancelledDuringBootDelay(t *testing.T) {
	pin := &MockPin{}
	drv, err := New(newSimBoard(100, 1),
		WithResetPin(pin),
		WithSettleDelay(0),
		WithBootDelay(10*time.Second),
		WithBannerDelay(0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := drv.Reset(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if got := strings.Join(pin.ops, " "); got != "output low input" {
		t.Errorf("pin ops = %q, want the line released before bailing", got)
	}
}

func TestBeginProbesWithoutStore(t *testing.T) {
	board := newSimBoard(100, 2)
	pin := &MockPin{}

	drv, err := New(board, WithResetPin(pin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := drv.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if got := strings.Join(pin.ops, " "); got != "input" {
		t.Errorf("pin ops = %q, want just \"input\"", got)
	}
	if board.steps != 2 {
		t.Errorf("board saw %d step commands, want an up/down probe pair", board.steps)
	}
	if board.raw != 100 {
		t.Errorf("board raw = %d, want unchanged 100", board.raw)
	}
	if drv.RawVolume() != 100 {
		t.Errorf("cached raw = %d, want probed 100", drv.RawVolume())
	}
}

func TestBeginRestoresPersisted(t *testing.T) {
	board := newSimBoard(160, 1)
	store := NewMockStore()
	store.values[8] = 40

	drv, err := New(board, WithPersistentVolume(store, 8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := drv.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if drv.RawVolume() != 40 {
		t.Errorf("raw volume = %d, want restored 40", drv.RawVolume())
	}
	if store.reads != 1 {
		t.Errorf("store reads = %d, want 1", store.reads)
	}
}

func TestBeginStoreReadFailure(t *testing.T) {
	board := newSimBoard(160, 1)
	store := NewMockStore()
	store.readErr = errors.New("nvram gone")

	drv, err := New(board, WithPersistentVolume(store, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = drv.Begin(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nvram gone") {
		t.Errorf("error = %v, want the store failure", err)
	}
}

func TestStoredVolumeOutsideBoundsIsClamped(t *testing.T) {
	board := newSimBoard(160, 1)
	store := NewMockStore()
	store.values[0] = 900

	drv, err := New(board, WithPersistentVolume(store, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := drv.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if drv.RawVolume() != drv.config.MaxRaw {
		t.Errorf("raw volume = %d, want clamped to %d", drv.RawVolume(), drv.config.MaxRaw)
	}
}
