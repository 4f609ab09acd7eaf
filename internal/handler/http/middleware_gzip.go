package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	gzipReaderPool sync.Pool
)

// withGZip inflates request bodies sent with Content-Encoding: gzip, which
// the adapter does while compression is enabled, and compresses responses
// for callers that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && hasEncodingToken(r.Header.Get("Content-Encoding"), "gzip") {
			body, err := newGzipBody(r.Body)
			if err != nil {
				logger.FromRequest(r).Err(err).Msg("request body is not valid gzip")
				http.Error(w, app.MsgInvalidGzipData, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasEncodingToken(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()
		next.ServeHTTP(gw, r)
	})
}

// hasEncodingToken reports whether a comma separated encoding header names
// token, ignoring case and quality parameters.
func hasEncodingToken(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(name), token) {
			return true
		}
	}
	return false
}

// gzipBody inflates a request body with a pooled reader.
type gzipBody struct {
	zr   *gzip.Reader
	orig io.ReadCloser
}

func newGzipBody(body io.ReadCloser) (*gzipBody, error) {
	zr, _ := gzipReaderPool.Get().(*gzip.Reader)
	if zr == nil {
		var err error
		if zr, err = gzip.NewReader(body); err != nil {
			return nil, err
		}
	} else if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &gzipBody{zr: zr, orig: body}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		return 0, http.ErrBodyReadAfterClose
	}
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if b.zr == nil {
		return nil
	}
	_ = b.zr.Close()
	gzipReaderPool.Put(b.zr)
	b.zr = nil
	return b.orig.Close()
}

// gzipResponseWriter compresses the body once the handler commits to a
// status that carries one. 204, 304 and responses that already set their
// own Content-Encoding pass through unchanged.
type gzipResponseWriter struct {
	http.ResponseWriter

	gz          *gzip.Writer
	wroteHeader bool
	passthrough bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status == http.StatusNoContent || status == http.StatusNotModified || w.Header().Get("Content-Encoding") != "" {
		w.passthrough = true
	} else {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.gz = gzipWriterPool.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(b)
	}
	return w.gz.Write(b)
}

// finish terminates the gzip stream. A handler that wrote nothing leaves
// the response untouched.
func (w *gzipResponseWriter) finish() {
	if w.gz == nil {
		return
	}
	_ = w.gz.Close()
	gzipWriterPool.Put(w.gz)
	w.gz = nil
}
