package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-codepointtrie/cptrie"
	"github.com/stretchr/testify/require"
)

func testLog(t *testing.T) logger.Logger {
	logger.New("NOOP")
	t.Cleanup(logger.OnExit)
	return logger.Sugar.WithServiceName(t.Name())
}

func digitsTrie(t *testing.T) []byte {
	b := cptrie.NewBuilder[uint8](0, 0)
	require.NoError(t, b.SetRange('0', '9', 1))
	tr, err := b.Build()
	require.NoError(t, err)
	return tr.Bytes()
}

type countingFetcher struct {
	next  Fetcher
	calls int
}

func (f *countingFetcher) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	f.calls++
	return f.next.Fetch(ctx, identifier)
}

type fakeBlobStore struct {
	blobs map[string][]byte
	err   error
	paths []string
}

func (s *fakeBlobStore) Reader(
	ctx context.Context, identity string, opts ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	s.paths = append(s.paths, identity)
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.blobs[identity]
	if !ok {
		return nil, fmt.Errorf("fake store: %s: %w", identity,
			&azStorageBlob.StorageError{ErrorCode: azblobBlobNotFound})
	}
	return &azblob.ReaderResponse{
		Reader:        io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
	}, nil
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	m.Put("digits", digitsTrie(t))

	tr, err := LoadTrie[uint8](context.Background(), m, "digits")
	require.NoError(t, err)
	require.Equal(t, uint8(1), tr.Get('7'))

	_, err = m.Fetch(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Fetch(ctx, "digits")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadTrieReportsFormatError(t *testing.T) {
	m := NewMemory()
	m.Put("short", digitsTrie(t)[:10])

	_, err := LoadTrie[uint8](context.Background(), m, "short")
	require.ErrorIs(t, err, cptrie.ErrBufferSize)
	var fe *cptrie.FormatError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, err.Error(), "short")
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "script"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "script", "digits.cpt"), digitsTrie(t), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	d, err := NewDir(testLog(t), root)
	require.NoError(t, err)

	tr, err := LoadTrie[uint8](context.Background(), d, "script/digits")
	require.NoError(t, err)
	require.Equal(t, uint8(1), tr.Get('0'))

	_, err = d.Fetch(context.Background(), "script/none")
	require.ErrorIs(t, err, ErrNotFound)

	for _, bad := range []string{"", "../digits", "/etc/passwd"} {
		_, err = d.Fetch(context.Background(), bad)
		require.ErrorIs(t, err, ErrBadIdentifier, bad)
	}

	ids, err := d.Identifiers()
	require.NoError(t, err)
	require.Equal(t, []string{"script/digits"}, ids)
}

type failingOpener struct{}

func (failingOpener) Open(string) (io.ReadCloser, error) { return nil, errors.New("disk on fire") }

func TestDirOpener(t *testing.T) {
	d, err := NewDir(testLog(t), "unused", WithOpener(failingOpener{}), WithExtension(".bin"))
	require.NoError(t, err)

	p, err := d.Path("gc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("unused", "gc.bin"), p)

	_, err = d.Fetch(context.Background(), "gc")
	require.ErrorContains(t, err, "disk on fire")
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestBlob(t *testing.T) {
	store := &fakeBlobStore{blobs: map[string][]byte{
		"v1/tries/gc.cpt": digitsTrie(t),
	}}
	b, err := NewBlob(testLog(t), store, WithPrefix("v1/tries"))
	require.NoError(t, err)

	tr, err := LoadTrie[uint8](context.Background(), b, "gc")
	require.NoError(t, err)
	require.Equal(t, uint8(1), tr.Get('5'))
	require.Equal(t, []string{"v1/tries/gc.cpt"}, store.paths)

	_, err = b.Fetch(context.Background(), "sc")
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, IsBlobNotFound(err))

	_, err = b.Fetch(context.Background(), "../gc")
	require.ErrorIs(t, err, ErrBadIdentifier)

	store.err = errors.New("throttled")
	_, err = b.Fetch(context.Background(), "gc")
	require.ErrorContains(t, err, "throttled")
	require.False(t, IsBlobNotFound(err))

	_, err = NewBlob(testLog(t), nil)
	require.ErrorIs(t, err, ErrStoreNotProvided)
}

func TestBlobStorageErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
	}{
		{"blob not found", &azStorageBlob.StorageError{ErrorCode: azblobBlobNotFound}, true},
		{"wrapped blob not found", fmt.Errorf("reader: %w", &azStorageBlob.StorageError{ErrorCode: azblobBlobNotFound}), true},
		{"container not found", &azStorageBlob.StorageError{ErrorCode: "ContainerNotFound"}, false},
		{"not found sentinel", fmt.Errorf("reader: %w", ErrNotFound), true},
		{"other", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBlobStore{err: tt.err}
			b, err := NewBlob(testLog(t), store)
			require.NoError(t, err)

			_, err = b.Fetch(context.Background(), "gc")
			require.Error(t, err)
			require.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
			require.Equal(t, tt.notFound, IsBlobNotFound(err))
			if !tt.notFound {
				require.ErrorIs(t, err, tt.err)
				require.ErrorContains(t, err, "gc.cpt")
			}
		})
	}
	require.False(t, IsBlobNotFound(nil))
}

func TestCached(t *testing.T) {
	m := NewMemory()
	m.Put("a", digitsTrie(t))
	m.Put("b", digitsTrie(t))
	m.Put("c", digitsTrie(t))
	upstream := &countingFetcher{next: m}

	c, err := NewCached(testLog(t), upstream, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = c.Fetch(context.Background(), "a")
		require.NoError(t, err)
	}
	require.Equal(t, 1, upstream.calls)

	_, err = c.Fetch(context.Background(), "b")
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "c") // evicts a
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	_, err = c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, 4, upstream.calls)

	// misses are not cached
	_, err = c.Fetch(context.Background(), "z")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = c.Fetch(context.Background(), "z")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 6, upstream.calls)

	c.Purge()
	require.Equal(t, 0, c.Len())

	_, err = NewCached(testLog(t), upstream, 0)
	require.ErrorIs(t, err, ErrCacheSize)
	_, err = NewCached(testLog(t), nil, 1)
	require.ErrorIs(t, err, ErrFetcherNotProvided)
}
