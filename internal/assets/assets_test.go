package assets

import (
	"bytes"
	"testing"
)

func TestFaceplate_IsDDS(t *testing.T) {
	if len(Faceplate) == 0 {
		t.Fatal("embedded faceplate is empty")
	}
	if !bytes.HasPrefix(Faceplate, []byte("DDS ")) {
		t.Errorf("faceplate does not start with DDS magic, got % x", Faceplate[:4])
	}
}
