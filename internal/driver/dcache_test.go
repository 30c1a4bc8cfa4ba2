package driver

import (
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	digest := HashContent([]byte("let x = 1; x"))
	payload := &DiskPayload{
		Path:        "a.fe",
		ContentHash: digest,
		Clean:       true,
	}
	if err := cache.Put(digest, payload); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Get(digest)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Path != "a.fe" || !got.Clean || got.ContentHash != digest {
		t.Fatalf("payload = %+v", got)
	}
	if got.Schema != diskCacheSchemaVersion {
		t.Fatalf("schema = %d", got.Schema)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(HashContent([]byte("absent"))); ok {
		t.Fatal("expected cache miss")
	}
}

func TestDiskCacheNilReceiver(t *testing.T) {
	var cache *DiskCache
	if _, ok := cache.Get(Digest{}); ok {
		t.Fatal("nil cache must miss")
	}
	if err := cache.Put(Digest{}, &DiskPayload{}); err != nil {
		t.Fatal("nil cache Put must be a no-op")
	}
}

func TestHashContentDiffers(t *testing.T) {
	if HashContent([]byte("a")) == HashContent([]byte("b")) {
		t.Fatal("distinct content must hash differently")
	}
}
