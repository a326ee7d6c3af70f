package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the pre-built frontend for every path no route matched.
// Unknown paths fall back to index.html so client-side routing works; unknown
// API paths get a JSON 404 instead.
func StaticHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api/") {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		if urlPath == "/" {
			urlPath = "/index.html"
		}

		// Clean against a rooted path so ".." cannot escape staticDir.
		filePath := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+urlPath)))

		info, err := os.Stat(filePath)
		if err != nil || info.IsDir() {
			index := filepath.Join(staticDir, "index.html")
			if _, err := os.Stat(index); err != nil {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
				return
			}
			c.File(index)
			return
		}

		c.File(filePath)
	}
}
