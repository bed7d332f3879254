package infra

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewRedisClientOptional(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client without url")
	}
}

func TestNewRedisClientPings(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()
}

func TestNewRedisClientBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "://nope"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewPostgresPoolRequiresURL(t *testing.T) {
	if _, err := NewPostgresPool(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
