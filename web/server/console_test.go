package server

import (
	"testing"
	"time"
)

func TestWebLogger_ForwardsProgress(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("mirrors", messageChan)

	lines := []string{"1% done, 0.01 s elapsed\n", "2% done, 0.02 s elapsed\n"}
	logger.Printf("%d%% done, %.2f s elapsed\n", 1, 0.01)
	logger.Printf("%d%% done, %.2f s elapsed\n", 2, 0.02)

	for i, expected := range lines {
		select {
		case msg := <-messageChan:
			if msg.Message != expected {
				t.Errorf("Message %d: expected %q, got %q", i, expected, msg.Message)
			}
			if msg.Level != "info" {
				t.Errorf("Expected level 'info', got '%s'", msg.Level)
			}
			if time.Since(msg.Timestamp) > time.Second {
				t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
			}
		default:
			t.Fatalf("Expected message %d to be queued", i)
		}
	}
}

func TestWebLogger_FullChannelDoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("default", messageChan)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			logger.Printf("line %d\n", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full channel")
	}

	if len(messageChan) != 1 {
		t.Errorf("Expected exactly the first message to be kept, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "line 0\n" {
		t.Errorf("Expected first line to be kept, got %q", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("default", nil)
	logger.Printf("Rendered in %.2f s\n", 0.5)
}
