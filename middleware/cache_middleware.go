package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache"
	compoundcache "github.com/x-xyz/goauction/service/cache/compoundCache"
	"github.com/x-xyz/goauction/service/cache/provider"
)

const (
	localCacheMaxTtl = 10 * time.Second
	// responses above this size skip the local layer, freecache rejects
	// entries over 1/1024 of its size
	localCacheMaxBody = 64 * 1024
)

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

// HttpCache caches successful GET responses in a local layer for small
// bodies and in the shared layer for everything.
type HttpCache struct {
	local  provider.Provider
	shared provider.Provider
	met    metrics.Service
}

func NewHttpCache(local, shared provider.Provider) *HttpCache {
	return &HttpCache{
		local:  local,
		shared: shared,
		met:    metrics.New("httpcache"),
	}
}

func (h *HttpCache) layers(ttl time.Duration, withLocal bool) cache.Service {
	localTtl := localCacheMaxTtl
	if ttl < localTtl {
		localTtl = ttl
	}

	services := []cache.Service{}
	if withLocal {
		services = append(services, cache.New(cache.ServiceConfig{
			Ttl:   localTtl,
			Pfx:   keys.PfxHttpCache,
			Cache: h.local,
		}))
	}
	services = append(services, cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxHttpCache,
		Cache: h.shared,
	}))
	return compoundcache.NewCompoundCache(services)
}

func (h *HttpCache) CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	readService := h.layers(ttl, true)
	sharedOnly := h.layers(ttl, false)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := readService.Get(ctx, key, &response)
			if err == nil {
				h.met.BumpSum("hit", 1)
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(response.Value)
				return nil
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Get")
			}

			// cache miss
			h.met.BumpSum("miss", 1)
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode >= 400 {
				return nil
			}

			value := resBody.Bytes()
			response = Response{
				Value:  value,
				Header: writer.Header(),
			}
			writeService := readService
			if len(value) > localCacheMaxBody {
				writeService = sharedOnly
			}
			if err := writeService.Set(ctx, key, response); err != nil {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Set")
			}

			return nil
		}
	}
}
