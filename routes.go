package main

import (
	"bytes"
	"compress/gzip"
	"errors"
	"log/slog"
	"strings"

	"github.com/kasperdew/stroom/filesystem"
	"github.com/kasperdew/stroom/http"
)

// registerRoutes wires the fixed route set onto the router. The store
// may be nil when no serving directory was configured; the file routes
// then have no success path.
func registerRoutes(router *http.Router, store filesystem.Filesystem) {
	router.GET("/", func(req *http.Request, res *http.Response, config http.Config) {})
	router.GETPrefix("/echo/", echoHandler)
	router.GET("/user-agent", userAgentHandler)
	router.GETPrefix("/files/", readFileHandler(store))
	router.POSTPrefix("/files/", writeFileHandler(store))
}

// echoHandler reflects the target suffix. When the client accepts gzip
// the body is compressed for real and Content-Length covers the
// compressed bytes.
func echoHandler(req *http.Request, res *http.Response, config http.Config) {
	suffix := strings.TrimPrefix(req.Target, "/echo/")
	res.Headers.Set(http.ContentType("text/plain"))

	if encoding, found := req.HeaderValue("Accept-Encoding"); found && http.EncodingSupported(encoding) {
		compressed, err := gzipBytes([]byte(suffix))
		if err == nil {
			res.Headers.Set(http.ContentEncoding("gzip"))
			res.SetBody(compressed)
			return
		}
		slog.Error("compressing echo body", "error", err)
	}

	res.SetBody([]byte(suffix))
}

func userAgentHandler(req *http.Request, res *http.Response, config http.Config) {
	agent, found := req.HeaderValue("User-Agent")
	if !found {
		res.WithStatus(http.StatusBadRequest)
		return
	}
	res.WithText(agent)
}

func readFileHandler(store filesystem.Filesystem) http.Handler {
	return func(req *http.Request, res *http.Response, config http.Config) {
		if config.Directory == "" || store == nil {
			res.WithStatus(http.StatusNotFound)
			return
		}

		name := strings.TrimPrefix(req.Target, "/files/")
		content, err := store.ReadFile(name)
		if err != nil {
			if !errors.Is(err, filesystem.ErrFileNotFound) && !errors.Is(err, filesystem.ErrInvalidPath) {
				slog.Error("reading file", "name", name, "error", err)
			}
			res.WithStatus(http.StatusNotFound)
			return
		}

		res.Headers.Set(http.ContentType("application/octet-stream"))
		res.SetBody(content)
	}
}

func writeFileHandler(store filesystem.Filesystem) http.Handler {
	return func(req *http.Request, res *http.Response, config http.Config) {
		if config.Directory == "" || store == nil {
			res.WithStatus(http.StatusInternalServerError)
			return
		}

		name := strings.TrimPrefix(req.Target, "/files/")
		body := req.Body
		if body == nil {
			body = []byte{}
		}
		if err := store.WriteFile(name, body); err != nil {
			slog.Error("writing file", "name", name, "error", err)
			res.WithStatus(http.StatusInternalServerError)
			return
		}

		res.WithStatus(http.StatusCreated)
	}
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
