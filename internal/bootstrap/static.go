package bootstrap

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticHandler serves files from dir. A directory is served through its
// index.html; directories without one 404 and are never listed.
func staticHandler(dir string) gin.HandlerFunc {
	root := http.Dir(dir)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Header("Allow", "GET, HEAD")
			c.AbortWithStatus(http.StatusMethodNotAllowed)
			return
		}

		name := path.Clean("/" + c.Request.URL.Path)
		f, err := root.Open(name)
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		if info.IsDir() {
			index, err := root.Open(strings.TrimSuffix(name, "/") + "/index.html")
			if err != nil {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			defer index.Close()

			info, err = index.Stat()
			if err != nil || info.IsDir() {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			f = index
		}

		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	}
}
