package webserver

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	StatusOK              = "HTTP/1.1 200 OK"
	StatusNotFound        = "HTTP/1.1 404 NOT FOUND"
	StatusTooManyRequests = "HTTP/1.1 429 TOO MANY REQUESTS"

	RouteRoot        = "/"
	RouteSleep       = "/sleep"
	RouteNotFound    = "not_found"
	RouteRateLimited = "rate_limited"
)

//go:embed templates/*.html
var embedded embed.FS

// DefaultPages returns the built-in hello.html and 404.html.
func DefaultPages() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// PagesFromDir serves pages from dir, or the built-in ones when dir is empty.
func PagesFromDir(dir string) fs.FS {
	if dir == "" {
		return DefaultPages()
	}
	return os.DirFS(dir)
}

type Response struct {
	Status string
	Route  string
	Body   []byte
	// Delay is waited out before the response is written.
	Delay time.Duration
}

func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s\r\nContent-Length: %d\r\n\r\n%s", r.Status, len(r.Body), r.Body)
	return int64(n), err
}

// Router maps an exact request line to a canned response.
type Router struct {
	routes   map[string]Response
	notFound Response
}

func NewRouter(pages fs.FS, sleepDelay time.Duration) (*Router, error) {
	hello, err := fs.ReadFile(pages, "hello.html")
	if err != nil {
		return nil, errors.Wrap(err, "read hello.html")
	}
	missing, err := fs.ReadFile(pages, "404.html")
	if err != nil {
		return nil, errors.Wrap(err, "read 404.html")
	}

	return &Router{
		routes: map[string]Response{
			"GET / HTTP/1.1": {
				Status: StatusOK,
				Route:  RouteRoot,
				Body:   hello,
			},
			"GET /sleep HTTP/1.1": {
				Status: StatusOK,
				Route:  RouteSleep,
				Body:   hello,
				Delay:  sleepDelay,
			},
		},
		notFound: Response{
			Status: StatusNotFound,
			Route:  RouteNotFound,
			Body:   missing,
		},
	}, nil
}

func (r *Router) Match(requestLine string) Response {
	if resp, ok := r.routes[requestLine]; ok {
		return resp
	}
	return r.notFound
}
