
package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brightedge-url-classifier/internal/app"
	"brightedge-url-classifier/internal/ioformats"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/pkg/logger"
)

type classifyReq struct {
	URL string `json:"url" binding:"required"`
}

type batchReq struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

type keywordsReq struct {
	URL   string `json:"url" binding:"required"`
	Count int    `json:"count"`
}

func newRouter(a *app.App, defaultCount int, l *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logRequest(l))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// POST /classify  { "url": "https://..." }
	r.POST("/classify", func(c *gin.Context) {
		var req classifyReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, a.Pipeline.Classify(c.Request.Context(), 1, req.URL))
	})

	// POST /classify/batch  { "urls": ["https://...", "..."] }
	r.POST("/classify/batch", func(c *gin.Context) {
		var req batchReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		results, err := a.Pipeline.ClassifyAll(c.Request.Context(), req.URLs)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "results": results})
			return
		}
		c.JSON(http.StatusOK, results)
	})

	// POST /classify/upload (multipart file=...) -> TSV stream
	r.POST("/classify/upload", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file part 'file' required"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return
		}
		defer f.Close()

		urls, err := ioformats.ReadURLsFrom(f, ioformats.FormatFor(fh.Filename))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", "text/tab-separated-values")
		c.Status(http.StatusOK)
		rw := ioformats.NewResultWriter(c.Writer)
		err = a.Pipeline.Run(c.Request.Context(), urls, func(res models.Result) error {
			if err := rw.Write(res); err != nil {
				return err
			}
			c.Writer.Flush()
			return nil
		})
		if cerr := rw.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			l.Warnf("upload stream ended early: %v", err)
		}
	})

	// POST /keywords  { "url": "https://...", "count": 10 }
	r.POST("/keywords", func(c *gin.Context) {
		var req keywordsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if req.Count <= 0 {
			req.Count = defaultCount
		}
		sum, err := a.Summarizer.Summarize(c.Request.Context(), req.URL, req.Count)
		if err != nil {
			status := http.StatusBadGateway
			if !models.NoPage(err) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sum)
	})

	return r
}

func logRequest(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
