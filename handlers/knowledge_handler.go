package handlers

import (
	"io"
	"net/http"
	"strings"

	"labelguard-backend/models"
	"labelguard-backend/processor"
	"labelguard-backend/service"

	"github.com/gin-gonic/gin"
)

// KnowledgeHandler handles HTTP requests for the regulation knowledge base
type KnowledgeHandler struct {
	knowledge   *service.KnowledgeService
	extractors  []processor.Extractor
	maxFileSize int64
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(knowledge *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledge:   knowledge,
		extractors:  processor.DefaultExtractors(),
		maxFileSize: 20 * 1024 * 1024, // 20MB
	}
}

// resolveDocKey validates the :key path parameter against the regulation
// registry, writing the error response itself on failure.
func resolveDocKey(c *gin.Context) (string, bool) {
	key := c.Param("key")
	if _, ok := models.DomainByKey(key); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_DOC_KEY",
				"message": "Unknown regulation document key: " + key,
			},
		})
		return "", false
	}
	return key, true
}

// Upload handles POST /api/knowledge/:key/upload
func (h *KnowledgeHandler) Upload(c *gin.Context) {
	key, ok := resolveDocKey(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}
	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": "File exceeds the 20MB upload limit",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_READ_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	text, detail, err := processor.ExtractText(raw, h.extractors)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXTRACTION_FAILED",
				"message": detail,
			},
		})
		return
	}

	chunkCount, err := h.knowledge.Save(c.Request.Context(), key, text, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SAVE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"doc_key":  key,
			"filename": fileHeader.Filename,
			"chunks":   chunkCount,
			"detail":   detail,
		},
	})
}

// Overview handles GET /api/knowledge
func (h *KnowledgeHandler) Overview(c *gin.Context) {
	snapshots, err := h.knowledge.LoadAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	documents := make([]gin.H, 0, len(models.RegulationSchema))
	for _, domain := range models.RegulationSchema {
		entry := gin.H{
			"doc_key": domain.Key,
			"name":    domain.Name,
			"loaded":  false,
		}
		if snapshot, ok := snapshots[domain.Key]; ok {
			entry["loaded"] = true
			entry["filename"] = snapshot.Filename
			entry["chunks"] = len(snapshot.Chunks)
			entry["full_text_length"] = snapshot.FullTextLength
			entry["updated"] = snapshot.Updated
		}
		documents = append(documents, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"documents": documents,
		},
	})
}

// Search handles GET /api/knowledge/:key/search
func (h *KnowledgeHandler) Search(c *gin.Context) {
	key, ok := resolveDocKey(c)
	if !ok {
		return
	}

	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "Query parameter q is required",
			},
		})
		return
	}

	matches, err := h.knowledge.Search(c.Request.Context(), key, keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	if matches == nil {
		matches = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"doc_key": key,
			"keyword": keyword,
			"matches": matches,
			"count":   len(matches),
		},
	})
}

// Reset handles DELETE /api/knowledge/:key
func (h *KnowledgeHandler) Reset(c *gin.Context) {
	key, ok := resolveDocKey(c)
	if !ok {
		return
	}

	if err := h.knowledge.Reset(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"doc_key": key,
			"deleted": true,
		},
	})
}
