package settings

import (
	"testing"
)

// BenchmarkStoreSave measures a full atomic write including the backup
// snapshot of the previous document.
func BenchmarkStoreSave(b *testing.B) {
	st := NewStore(b.TempDir())
	s := Default()
	s.UserKey = "uQiRzpo4DXghDmr9QzzfQu27cmVRsG"
	s.EncryptedAPIToken = make([]byte, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := st.Save(s); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

// BenchmarkStoreLoad measures parsing and normalizing a saved document.
func BenchmarkStoreLoad(b *testing.B) {
	st := NewStore(b.TempDir())
	s := Default()
	s.UserKey = "uQiRzpo4DXghDmr9QzzfQu27cmVRsG"
	if err := st.Save(s); err != nil {
		b.Fatalf("Save failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Load(); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}
