package api

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/julienschmidt/httprouter"
)

// static serves the embedded assets with an xxhash ETag so browsers stop
// re-downloading the stylesheet on every page load.
func (h *handler) static(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	name := path.Join("public", path.Clean("/"+params.ByName("filepath")))
	buf, err := assets.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	etag := etagFor(buf)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.Write(buf)
}

func etagFor(buf []byte) string {
	return `"` + strconv.FormatUint(xxhash.Sum64(buf), 16) + `"`
}
