//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

type flashStore interface {
	io.ReaderAt
	io.WriterAt
}

// memStore is a RAM-backed flash store for tests and headless runs without
// image files.
type memStore []byte

func (m memStore) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m)) {
		return 0, io.EOF
	}
	n := copy(p, m[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m memStore) WriteAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m)) {
		return 0, io.ErrShortWrite
	}
	n := copy(m[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

type hostFlash struct {
	mu         sync.Mutex
	name       string
	store      flashStore
	size       uint32
	eraseBlock uint32
	blank      []byte
}

func newMemFlash(name string, size, eraseBlock uint32) *hostFlash {
	store := make(memStore, size)
	for i := range store {
		store[i] = 0xFF
	}
	return newHostFlash(name, store, size, eraseBlock)
}

// openFileFlash maps a flash device onto dir/<name>.flash, creating an
// erased image of size bytes if the file does not exist yet.
func openFileFlash(dir, name string, size, eraseBlock uint32) (*hostFlash, error) {
	path := filepath.Join(dir, name+".flash")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash %q: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash %q: %w", path, err)
	}

	fresh := st.Size() == 0
	if st.Size() > int64(^uint32(0)) {
		_ = f.Close()
		return nil, fmt.Errorf("flash %q: image too large", path)
	}
	if !fresh {
		size = uint32(st.Size())
	} else if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("truncate flash %q: %w", path, err)
	}

	hf := newHostFlash(name, f, size, eraseBlock)
	if fresh {
		if err := hf.Erase(0, size-size%eraseBlock); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return hf, nil
}

func newHostFlash(name string, store flashStore, size, eraseBlock uint32) *hostFlash {
	hf := &hostFlash{
		name:       name,
		store:      store,
		size:       size,
		eraseBlock: eraseBlock,
		blank:      make([]byte, eraseBlock),
	}
	for i := range hf.blank {
		hf.blank[i] = 0xFF
	}
	return hf
}

func (f *hostFlash) SizeBytes() uint32       { return f.size }
func (f *hostFlash) EraseBlockBytes() uint32 { return f.eraseBlock }

func (f *hostFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off >= f.size {
		return 0, fmt.Errorf("%s flash read at %d: %w", f.name, off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}
	n, err := f.store.ReadAt(p, int64(off))
	if errors.Is(err, io.EOF) && n == len(p) {
		err = nil
	}
	return n, err
}

func (f *hostFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off >= f.size {
		return 0, fmt.Errorf("%s flash write at %d: %w", f.name, off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.store.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%s flash read before write at %d: %w", f.name, off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, fmt.Errorf("%s flash write at %d: %w", f.name, off+uint32(i), ErrFlashWriteRequiresErase)
		}
	}
	return f.store.WriteAt(p, int64(off))
}

// program ANDs p into the store, the way NOR page programming clears bits.
func (f *hostFlash) program(p []byte, off uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off >= f.size || uint64(off)+uint64(len(p)) > uint64(f.size) {
		return fmt.Errorf("%s flash program at %d: %w", f.name, off, os.ErrInvalid)
	}
	buf := make([]byte, len(p))
	if _, err := f.store.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	for i := range buf {
		buf[i] &= p[i]
	}
	_, err := f.store.WriteAt(buf, int64(off))
	return err
}

func (f *hostFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if size == 0 {
		return nil
	}
	if off%f.eraseBlock != 0 || size%f.eraseBlock != 0 {
		return fmt.Errorf("%s flash erase off=%d size=%d: %w", f.name, off, size, os.ErrInvalid)
	}
	if off >= f.size || off+size > f.size {
		return fmt.Errorf("%s flash erase off=%d size=%d: %w", f.name, off, size, os.ErrInvalid)
	}

	for size > 0 {
		if _, err := f.store.WriteAt(f.blank, int64(off)); err != nil {
			return fmt.Errorf("%s flash erase block at %d: %w", f.name, off, err)
		}
		off += f.eraseBlock
		size -= f.eraseBlock
	}
	return nil
}

func (f *hostFlash) close() error {
	if c, ok := f.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FlashImages is an erased internal/external image pair on disk, the layout
// NewHost reads from HostConfig.FlashDir.
type FlashImages struct {
	Internal Flash
	External Flash

	internal *hostFlash
	external *hostFlash
}

// CreateFlashImages replaces dir/internal.flash and dir/external.flash with
// fully erased images.
func CreateFlashImages(dir string) (*FlashImages, error) {
	for _, name := range []string{"internal", "external"} {
		err := os.Remove(filepath.Join(dir, name+".flash"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	internal, err := openFileFlash(dir, "internal", InternalFlashSize, InternalFlashEraseBlock)
	if err != nil {
		return nil, err
	}
	external, err := openFileFlash(dir, "external", ExternalFlashSize, ExternalFlashEraseBlock)
	if err != nil {
		_ = internal.close()
		return nil, err
	}
	return &FlashImages{Internal: internal, External: external, internal: internal, external: external}, nil
}

func (f *FlashImages) Close() error {
	return errors.Join(f.internal.close(), f.external.close())
}
