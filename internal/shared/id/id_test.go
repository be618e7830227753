package id

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateWithPrefix("sess")

	if !strings.HasPrefix(id, "sess_") {
		t.Errorf("ID should start with 'sess_', got: %s", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
	}
	if _, err := ulid.Parse(parts[1]); err != nil {
		t.Errorf("ULID part should be valid: %s: %v", parts[1], err)
	}
}

func TestNewSessionID(t *testing.T) {
	before := time.Now()
	sessID := NewSessionID()
	after := time.Now()

	if !strings.HasPrefix(sessID.String(), "sess_") {
		t.Errorf("SessionID should start with 'sess_', got: %s", sessID)
	}

	ts, err := sessID.Timestamp()
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}

	// ULID timestamps have millisecond precision
	if ts.UnixMilli() < before.UnixMilli() || ts.UnixMilli() > after.UnixMilli() {
		t.Errorf("Timestamp %v should be between %v and %v", ts, before, after)
	}
}

func TestSessionIDTimestampErrors(t *testing.T) {
	if _, err := SessionID("app_01ARZ3NDEKTSV4RRFFQ69G5FAV").Timestamp(); err == nil {
		t.Error("Expected error for wrong prefix")
	}
	if _, err := SessionID("sess_invalid").Timestamp(); err == nil {
		t.Error("Expected error for malformed ULID")
	}
}

func TestGeneratorWithEntropy(t *testing.T) {
	gen := NewGeneratorWithEntropy(bytes.NewReader(make([]byte, 64)))

	id := gen.Generate()

	if !bytes.Equal(id.Entropy(), make([]byte, 10)) {
		t.Errorf("Entropy should come from the supplied reader, got %x", id.Entropy())
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	const idsPerGoroutine = 50

	var wg sync.WaitGroup
	idChan := make(chan string, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- gen.GenerateWithPrefix(SessionPrefix)
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[string]bool)
	for id := range idChan {
		if seen[id] {
			t.Errorf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
