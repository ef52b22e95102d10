package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/karoo-dev/karoo/internal/storage"
)

// Storage is the blob store uploads go to. Set during startup.
var Storage storage.ObjectStorage

// UploadImages stores one or more multipart "file" parts in the blob store
// and returns their public URLs in input order. Files are uploaded
// concurrently; the first failure fails the whole request, and blobs that
// already made it are left in place.
func UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	files := form.File["file"]

	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	for _, file := range files {
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
			return
		}
	}

	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx.Request.Context())

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := putFile(gctx, file)
			if err != nil {
				return err
			}

			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.S().Errorw("failed to upload image", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"url":  urls[0],
		"urls": urls,
	})
}

func putFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))

	return Storage.Put(ctx, key, file.Header.Get("Content-Type"), src)
}
