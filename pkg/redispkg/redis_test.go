package redispkg

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestSetup(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Setup(context.Background(), mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("Setup(%q) returned error: %v", mr.Addr(), err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("client.Set returned error: %v", err)
	}

	if got, _ := mr.Get("k"); got != "v" {
		t.Errorf("mr.Get(k)=%q, want %q", got, "v")
	}
}

func TestSetupEmptyAddress(t *testing.T) {
	if _, err := Setup(context.Background(), "", "", 0); err == nil {
		t.Error("Setup with empty address returned nil error")
	}
}

func TestSetupUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Setup(context.Background(), addr, "", 0); err == nil {
		t.Error("Setup with closed server returned nil error")
	}
}
