package gamepaint

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistryCreateAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Create("a", 10, 20, Transparent)

	c, err := reg.Get("a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Width() != 10 || c.Height() != 20 {
		t.Errorf("dims = %dx%d", c.Width(), c.Height())
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("missing")
	if !errors.Is(err, ErrCanvasNotFound) {
		t.Errorf("Get error = %v, want ErrCanvasNotFound", err)
	}
	err = reg.With("missing", func(*Canvas) error { return nil })
	if !errors.Is(err, ErrCanvasNotFound) {
		t.Errorf("With error = %v, want ErrCanvasNotFound", err)
	}
}

func TestRegistryCreateReplaces(t *testing.T) {
	reg := NewRegistry()
	old := reg.Create("a", 10, 10, White)
	reg.Create("a", 20, 5, Transparent)

	c, err := reg.Get("a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c == old {
		t.Error("Create did not replace the stored canvas")
	}
	if c.Width() != 20 || c.Height() != 5 {
		t.Errorf("dims = %dx%d, want 20x5", c.Width(), c.Height())
	}
}

func TestRegistryWithPropagatesError(t *testing.T) {
	reg := NewRegistry()
	reg.Create("a", 5, 5, Transparent)
	want := errors.New("boom")
	if err := reg.With("a", func(*Canvas) error { return want }); !errors.Is(err, want) {
		t.Errorf("With error = %v", err)
	}
}

func TestRegistryRemoveAndIDs(t *testing.T) {
	reg := NewRegistry()
	reg.Create("b", 5, 5, Transparent)
	reg.Create("a", 5, 5, Transparent)

	ids := reg.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs = %v", ids)
	}

	reg.Remove("a")
	reg.Remove("never-existed")
	if _, err := reg.Get("a"); !errors.Is(err, ErrCanvasNotFound) {
		t.Error("Remove did not delete the canvas")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	reg.Create("shared", 50, 50, Transparent)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.With("shared", func(c *Canvas) error {
				c.SetPixel(i, i, White)
				return nil
			})
		}(i)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Create("own", 5, 5, Transparent)
			_, _ = reg.Get("shared")
		}(i)
	}
	wg.Wait()

	c, err := reg.Get("shared")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if c.PixelAt(i, i) != White {
			t.Fatalf("pixel (%d,%d) missing after concurrent writes", i, i)
		}
	}
}
