package redissvc

import (
	"context"
	"testing"
)

func TestConnect_Unreachable(t *testing.T) {
	rdb, err := Connect(context.Background(), "127.0.0.1:1")
	if err == nil {
		rdb.Close()
		t.Fatal("expected an error connecting to a closed port")
	}
	if rdb != nil {
		t.Error("expected no client on failure")
	}
}
