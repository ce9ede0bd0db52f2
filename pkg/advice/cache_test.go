package advice

import (
	"testing"
	"time"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := NewCache(4, time.Hour)
	if _, ok := c.Get("when to water basil"); ok {
		t.Error("hit on an empty cache")
	}
	c.Put("when to water basil", "every two days")
	got, ok := c.Get("when to water basil")
	if !ok || got != "every two days" {
		t.Errorf("Get = (%q, %v)", got, ok)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(4, -time.Second) // everything born expired
	c.Put("q", "a")
	if _, ok := c.Get("q"); ok {
		t.Error("expired entry served")
	}
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	c := NewCache(2, time.Hour)
	c.Put("first", "1")
	c.Put("second", "2")
	c.Put("third", "3")
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry not evicted")
	}
	if _, ok := c.Get("second"); !ok {
		t.Error("newer entry evicted")
	}
	if _, ok := c.Get("third"); !ok {
		t.Error("newest entry evicted")
	}
}

func TestCachePutSameKeyDoesNotGrow(t *testing.T) {
	c := NewCache(2, time.Hour)
	c.Put("q", "a")
	c.Put("q", "b")
	c.Put("other", "x")
	if got, _ := c.Get("q"); got != "b" {
		t.Errorf("overwrite lost: %q", got)
	}
	if _, ok := c.Get("other"); !ok {
		t.Error("re-put of the same key consumed a slot")
	}
}
