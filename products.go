package main

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

const maxUploadSizeBytes int64 = 5 * 1024 * 1024

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

func listProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := models.SearchProducts(c.Request.Context(), c.Query("search"))
		if err != nil {
			logError(c, "products.go", "listProductsHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := models.GetProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		product, err := models.CreateProduct(c.Request.Context(), &input)
		if err != nil {
			logError(c, "products.go", "createProductHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		product, err := models.UpdateProduct(c.Request.Context(), id, &input)
		if err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logError(c, "products.go", "updateProductHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		if err := models.DeleteProduct(c.Request.Context(), id); err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logError(c, "products.go", "deleteProductHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// uploadProductImageHandler stores the uploaded image under the upload dir,
// writes a 200px-wide thumbnail next to it, and records the serving URL on
// the product.
func uploadProductImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if fileHeader.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds maximum size"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			logError(c, "products.go", "uploadProductImageHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			logError(c, "products.go", "uploadProductImageHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}

		// Sniff the payload rather than trusting the client's header.
		if !imageMimeTypes[http.DetectContentType(data)] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}

		if _, err := models.GetProduct(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		uploadDir := config.GetUploadDir()
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			logError(c, "products.go", "uploadProductImageHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext == "" {
			ext = ".jpg"
		}
		filename := utils.GenerateUniqueFilename() + ext
		if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
			logError(c, "products.go", "uploadProductImageHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}

		// Thumbnail generation is best-effort.
		if img, derr := imaging.Decode(bytes.NewReader(data)); derr == nil {
			thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)
			var buf bytes.Buffer
			if eerr := imaging.Encode(&buf, thumbnail, imaging.JPEG); eerr == nil {
				thumbName := strings.TrimSuffix(filename, ext) + "_thumb.jpg"
				_ = os.WriteFile(filepath.Join(uploadDir, thumbName), buf.Bytes(), 0o644)
			}
		}

		product, err := models.UpdateProductImage(c.Request.Context(), id, "/products/images/"+filename)
		if err != nil {
			logError(c, "products.go", "uploadProductImageHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product image"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func serveProductImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := filepath.Base(c.Param("filename"))
		path := filepath.Join(config.GetUploadDir(), filename)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.Header("Content-Disposition", "inline; filename="+filename)
		c.File(path)
	}
}
