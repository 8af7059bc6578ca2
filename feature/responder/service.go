package responder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	// ErrDocumentUnavailable wraps any failure to read the root document.
	ErrDocumentUnavailable = errors.New("root document unavailable")
	// ErrNotAFile is returned when the root document path is a directory.
	ErrNotAFile = errors.New("not a regular file")
	// ErrInvalidEncoding is returned when the root document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// Service renders the root document with the configuration block injected.
type Service struct {
	root   http.FileSystem
	index  string
	script []byte
	logger *zap.Logger
}

// NewService creates a new responder service.
// The script is rendered once; values never change for the life of the process.
func NewService(root http.FileSystem, index string, values Values, logger *zap.Logger) *Service {
	return &Service{
		root:   root,
		index:  path.Clean("/" + index),
		script: []byte(BuildScript(values)),
		logger: logger,
	}
}

// IndexPath returns the request path of the root document (e.g. "/index.html").
func (s *Service) IndexPath() string {
	return s.index
}

// Render reads the root document and injects the configuration block.
// The document is read from the serving root on every call.
func (s *Service) Render() ([]byte, error) {
	content, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocumentUnavailable, s.index, err)
	}

	out, ok := Inject(content, s.script)
	if !ok {
		s.logger.Debug("Root document has no head marker, serving unmodified",
			zap.String("document", s.index))
	}
	return out, nil
}

func (s *Service) read() ([]byte, error) {
	f, err := s.root.Open(s.index)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, ErrNotAFile
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}
	return content, nil
}
