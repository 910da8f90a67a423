// dictionary.go implements the owned, mutable metadata dictionary.

// Package dictionary provides the string key-value store attached to media
// frames as metadata.
package dictionary

import (
	"context"
	"sort"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

// Dictionary is an owned, mutable key-value store. Attaching it to a frame
// (see frame.SetMetadata) transfers ownership via Disown; a disowned or
// freed Dictionary must not be used anymore.
type Dictionary struct {
	locker  xsync.Mutex
	entries map[string]string
	moved   atomic.Bool
	freed   atomic.Bool
}

func New() *Dictionary {
	return &Dictionary{
		entries: map[string]string{},
	}
}

// FromMap is a convenience constructor for pre-filled dictionaries.
func FromMap(m map[string]string) *Dictionary {
	d := New()
	for k, v := range m {
		d.entries[k] = v
	}
	return d
}

func (d *Dictionary) assertUsable(ctx context.Context) {
	if d.moved.Load() {
		logger.Panic(ctx, "the dictionary was already disowned")
	}
	if d.freed.Load() {
		logger.Panic(ctx, "the dictionary was already freed")
	}
}

func (d *Dictionary) Set(ctx context.Context, key, value string) {
	d.assertUsable(ctx)
	d.locker.Do(ctx, func() {
		d.entries[key] = value
	})
}

func (d *Dictionary) Get(ctx context.Context, key string) (string, bool) {
	d.assertUsable(ctx)
	return xsync.DoR2(ctx, &d.locker, func() (string, bool) {
		v, ok := d.entries[key]
		return v, ok
	})
}

func (d *Dictionary) Delete(ctx context.Context, key string) {
	d.assertUsable(ctx)
	d.locker.Do(ctx, func() {
		delete(d.entries, key)
	})
}

func (d *Dictionary) Len(ctx context.Context) int {
	d.assertUsable(ctx)
	return xsync.DoR1(ctx, &d.locker, func() int {
		return len(d.entries)
	})
}

func (d *Dictionary) Keys(ctx context.Context) []string {
	d.assertUsable(ctx)
	return xsync.DoR1(ctx, &d.locker, func() []string {
		keys := make([]string, 0, len(d.entries))
		for k := range d.entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	})
}

// Disown transfers the entries out of the Dictionary and marks it moved.
// It is used by the frame layer when the dictionary gets attached to a
// buffer; any use of the Dictionary afterwards is a bug.
func (d *Dictionary) Disown(ctx context.Context) map[string]string {
	d.assertUsable(ctx)
	if !d.moved.CompareAndSwap(false, true) {
		logger.Panic(ctx, "the dictionary was already disowned")
	}
	return xsync.DoR1(ctx, &d.locker, func() map[string]string {
		entries := d.entries
		d.entries = nil
		return entries
	})
}

// Free releases the Dictionary without transferring its entries anywhere.
// Freeing a disowned Dictionary is a no-op: the entries are already owned
// by the buffer layer.
func (d *Dictionary) Free(ctx context.Context) {
	logger.Tracef(ctx, "Free()")
	if d.moved.Load() {
		return
	}
	if !d.freed.CompareAndSwap(false, true) {
		return
	}
	d.locker.Do(ctx, func() {
		d.entries = nil
	})
}
