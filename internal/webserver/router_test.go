package webserver

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Match(t *testing.T) {
	t.Parallel()

	router, err := NewRouter(DefaultPages(), 3*time.Second)
	require.NoError(t, err)

	tests := []struct {
		name       string
		line       string
		wantStatus string
		wantRoute  string
		wantDelay  time.Duration
		wantBody   string
	}{
		{
			name:       "Root",
			line:       "GET / HTTP/1.1",
			wantStatus: StatusOK,
			wantRoute:  RouteRoot,
			wantBody:   "<h1>Hello!</h1>",
		},
		{
			name:       "Sleep",
			line:       "GET /sleep HTTP/1.1",
			wantStatus: StatusOK,
			wantRoute:  RouteSleep,
			wantDelay:  3 * time.Second,
			wantBody:   "<h1>Hello!</h1>",
		},
		{
			name:       "UnknownPath",
			line:       "GET /missing HTTP/1.1",
			wantStatus: StatusNotFound,
			wantRoute:  RouteNotFound,
			wantBody:   "<h1>Oops!</h1>",
		},
		{
			name:       "OtherMethod",
			line:       "POST / HTTP/1.1",
			wantStatus: StatusNotFound,
			wantRoute:  RouteNotFound,
			wantBody:   "<h1>Oops!</h1>",
		},
		{
			name:       "OtherProtocol",
			line:       "GET / HTTP/1.0",
			wantStatus: StatusNotFound,
			wantRoute:  RouteNotFound,
			wantBody:   "<h1>Oops!</h1>",
		},
		{
			name:       "Empty",
			line:       "",
			wantStatus: StatusNotFound,
			wantRoute:  RouteNotFound,
			wantBody:   "<h1>Oops!</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := router.Match(tt.line)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantRoute, resp.Route)
			assert.Equal(t, tt.wantDelay, resp.Delay)
			assert.Contains(t, string(resp.Body), tt.wantBody)
		})
	}
}

func TestResponse_WriteTo(t *testing.T) {
	t.Parallel()

	resp := Response{Status: StatusOK, Body: []byte("hello")}
	var buf bytes.Buffer

	n, err := resp.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello", buf.String())
	assert.EqualValues(t, buf.Len(), n)
}

func TestNewRouter_MissingPage(t *testing.T) {
	t.Parallel()

	pages := fstest.MapFS{
		"hello.html": &fstest.MapFile{Data: []byte("hi")},
	}
	_, err := NewRouter(pages, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read 404.html")
}

func TestPagesFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.html"), []byte("custom hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "404.html"), []byte("custom missing"), 0o600))

	router, err := NewRouter(PagesFromDir(dir), 0)
	require.NoError(t, err)
	assert.Equal(t, "custom hello", string(router.Match("GET / HTTP/1.1").Body))
	assert.Equal(t, "custom missing", string(router.Match("GET /x HTTP/1.1").Body))

	_, err = NewRouter(PagesFromDir(""), 0)
	assert.NoError(t, err)
}

func TestReadRequestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "CRLF", in: "GET / HTTP/1.1\r\nHost: x\r\n\r\n", want: "GET / HTTP/1.1"},
		{name: "LF", in: "GET /sleep HTTP/1.1\n", want: "GET /sleep HTTP/1.1"},
		{name: "NoTerminator", in: "GET / HTTP/1.1", want: "GET / HTTP/1.1"},
		{name: "EmptyInput", in: "", wantErr: true},
		{name: "TooLong", in: strings.Repeat("A", 64<<10), wantErr: true},
		{name: "LongLineUnderLimit", in: "GET /" + strings.Repeat("a", 4000) + " HTTP/1.1\r\n", want: "GET /" + strings.Repeat("a", 4000) + " HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readRequestLine(bytes.NewBufferString(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// endlessReader yields 'A' forever and counts what was consumed.
type endlessReader struct {
	read int
}

func (r *endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'A'
	}
	r.read += len(p)
	return len(p), nil
}

func TestReadRequestLine_StopsAtLimit(t *testing.T) {
	t.Parallel()

	r := &endlessReader{}
	line, err := readRequestLine(r)

	require.ErrorIs(t, err, ErrRequestLineTooLong)
	assert.Empty(t, line)
	assert.LessOrEqual(t, r.read, MaxRequestLine)

	_, err = readRequestLine(io.MultiReader(strings.NewReader(strings.Repeat("B", MaxRequestLine-1)), strings.NewReader("\n")))
	assert.NoError(t, err)
}
