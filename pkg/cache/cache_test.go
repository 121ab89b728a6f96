package cache

import (
	"sync"
	"testing"
)

func TestCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(c *Cache, t *testing.T)
	}{
		{
			name: "set and get",
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("1"))
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name: "get missing key",
			actions: func(c *Cache, t *testing.T) {
				if _, ok := c.Get("missing"); ok {
					t.Errorf("expected miss for unknown key")
				}
			},
		},
		{
			name: "remove returns stored value",
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("1"))
				if v, ok := c.Remove("a"); !ok || string(v) != "1" {
					t.Errorf("expected removed value=1, got=%v, ok=%v", v, ok)
				}
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be gone after remove")
				}
			},
		},
		{
			name: "remove missing key is not an error",
			actions: func(c *Cache, t *testing.T) {
				if _, ok := c.Remove("missing"); ok {
					t.Errorf("expected ok=false for missing key")
				}
			},
		},
		{
			name: "get returns independent copy",
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("abc"))
				v, _ := c.Get("a")
				v[0] = 'x'
				if again, _ := c.Get("a"); string(again) != "abc" {
					t.Errorf("cache value corrupted by caller mutation: %q", again)
				}
			},
		},
		{
			name: "no eviction",
			actions: func(c *Cache, t *testing.T) {
				for i := 0; i < 1000; i++ {
					c.Set(string(rune('a'+i%26))+string(rune('0'+i%10)), []byte("v"))
				}
				c.Set("keep", []byte("v"))
				if _, ok := c.Get("keep"); !ok {
					t.Errorf("expected entry to survive, nothing may be evicted")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.actions(c, t)
		})
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Set("shared", []byte("value"))
		}()
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
		go func() {
			defer wg.Done()
			c.Remove("shared")
		}()
	}
	wg.Wait()
}
