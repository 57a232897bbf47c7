package storage

import (
	"context"
	"errors"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	data map[string][]byte

	failPut    bool
	failGet    bool
	failDelete bool
}

var errKVBroken = errors.New("kv broken")

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.failGet {
		return nil, false, errKVBroken
	}
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *memKV) Put(ctx context.Context, key string, value []byte) error {
	if m.failPut {
		return errKVBroken
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	if m.failDelete {
		return errKVBroken
	}
	delete(m.data, key)
	return nil
}
