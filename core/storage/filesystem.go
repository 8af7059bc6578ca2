package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

const errCodeNoSuchKey = "NoSuchKey"

// FileSystem exposes a bucket as an http.FileSystem.
// Objects are regular files and key prefixes ending in "/" are directories.
type FileSystem struct {
	client  Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewFileSystem creates a read-only view of bucket rooted at prefix.
func NewFileSystem(client Client, bucket, prefix string, timeout time.Duration) *FileSystem {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &FileSystem{client: client, bucket: bucket, prefix: prefix, timeout: timeout}
}

// Open implements http.FileSystem.
func (f *FileSystem) Open(name string) (http.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	rel := strings.TrimPrefix(path.Clean("/"+name), "/")
	key := f.prefix + rel

	if rel != "" {
		file, err := f.openObject(ctx, key)
		if err == nil {
			return file, nil
		}
		if !isNoSuchKey(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
	}

	dirPrefix := key
	if dirPrefix != "" && !strings.HasSuffix(dirPrefix, "/") {
		dirPrefix += "/"
	}
	entries, err := f.list(ctx, dirPrefix)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if len(entries) == 0 && rel != "" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return &objectFile{
		Reader:  bytes.NewReader(nil),
		info:    objectInfo{name: path.Base("/" + rel), dir: true},
		entries: entries,
	}, nil
}

func (f *FileSystem) openObject(ctx context.Context, key string) (*objectFile, error) {
	obj, err := f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, err
	}

	info := objectInfo{name: path.Base(key), size: int64(len(data))}
	if st, ok := obj.(interface{ Stat() (minio.ObjectInfo, error) }); ok {
		if oi, err := st.Stat(); err == nil {
			info.modTime = oi.LastModified
		}
	}

	return &objectFile{Reader: bytes.NewReader(data), info: info}, nil
}

func (f *FileSystem) list(ctx context.Context, prefix string) ([]fs.FileInfo, error) {
	var entries []fs.FileInfo
	for obj := range f.client.ListObjects(ctx, f.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %q: %w", prefix, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			continue
		}
		entries = append(entries, objectInfo{
			name:    name,
			size:    obj.Size,
			modTime: obj.LastModified,
			dir:     isDir,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == errCodeNoSuchKey
	}
	return errors.Is(err, fs.ErrNotExist)
}

type objectFile struct {
	*bytes.Reader
	info    objectInfo
	entries []fs.FileInfo
	read    int
}

func (o *objectFile) Close() error { return nil }

func (o *objectFile) Stat() (fs.FileInfo, error) { return o.info, nil }

func (o *objectFile) Readdir(count int) ([]fs.FileInfo, error) {
	if !o.info.dir {
		return nil, &fs.PathError{Op: "readdir", Path: o.info.name, Err: fs.ErrInvalid}
	}
	rest := o.entries[o.read:]
	if count <= 0 {
		o.read = len(o.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if count > len(rest) {
		count = len(rest)
	}
	o.read += count
	return rest[:count], nil
}

type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i objectInfo) Name() string       { return i.name }
func (i objectInfo) Size() int64        { return i.size }
func (i objectInfo) ModTime() time.Time { return i.modTime }
func (i objectInfo) IsDir() bool        { return i.dir }
func (i objectInfo) Sys() any           { return nil }

func (i objectInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
