package cache

import (
	"context"
	"testing"
)

func TestPageCache_SaveAndLoadRoundTrip(t *testing.T) {
	c := &PageCache{Dir: t.TempDir()}
	ctx := context.Background()
	url := "https://example.com/page"

	if err := c.Save(ctx, url, "text/html", `"etag1"`, "Mon, 02 Jan 2006 15:04:05 GMT", []byte("<html>hi</html>")); err != nil {
		t.Fatalf("save: %v", err)
	}
	meta, err := c.LoadMeta(ctx, url)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if meta.ETag != `"etag1"` {
		t.Fatalf("unexpected etag: %q", meta.ETag)
	}
	body, err := c.LoadBody(ctx, url)
	if err != nil {
		t.Fatalf("load body: %v", err)
	}
	if string(body) != "<html>hi</html>" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestPageCache_MissReturnsError(t *testing.T) {
	c := &PageCache{Dir: t.TempDir()}
	if _, err := c.LoadMeta(context.Background(), "https://example.com/missing"); err == nil {
		t.Fatalf("expected miss error")
	}
}

func TestPageCache_UnconfiguredDirFails(t *testing.T) {
	c := &PageCache{}
	if err := c.Save(context.Background(), "u", "", "", "", nil); err == nil {
		t.Fatalf("expected error for unconfigured dir")
	}
}
