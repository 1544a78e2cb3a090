package session

import "testing"

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		if err != nil {
			t.Fatalf("GenerateID: %v", err)
		}
		// 32 bytes base64url without padding
		if len(id) != 43 {
			t.Fatalf("GenerateID length = %d, want 43", len(id))
		}
		if seen[id] {
			t.Fatalf("GenerateID repeated %q", id)
		}
		seen[id] = true
	}
}
