package server

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/commentlabeler/internal/models"
	"github.com/spacesedan/commentlabeler/internal/pipeline"
)

const (
	msgAccessDenied   = "Access denied: invalid token"
	msgNoFile         = "No file uploaded"
	msgUploadTooLarge = "Upload too large"
	msgProcessFailed  = "Could not process CSV."
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":          "Comment Labeler",
		"RequiredColumn": models.ColumnCommentText,
		"AddedColumns":   append([]string{models.ColumnCommentClean}, models.LabelColumns...),
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": s.provider})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	reqID := c.GetString(requestIDKey)

	// The token lives in the form body, so the size cap is enforced before
	// the token can be read.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.String(http.StatusRequestEntityTooLarge, msgUploadTooLarge)
			return
		}
		// Non-multipart bodies still carry url-encoded fields; the file
		// lookup below rejects them.
	}

	if !s.validToken(c.PostForm("token")) {
		slog.Warn("[Server] Rejected analyze request with invalid token",
			slog.String("request_id", reqID),
			slog.String("client_ip", c.ClientIP()))
		c.String(http.StatusForbidden, msgAccessDenied)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, msgNoFile)
		return
	}

	upload, err := fileHeader.Open()
	if err != nil {
		slog.Error("[Server] Failed to open uploaded file",
			slog.String("request_id", reqID),
			slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, msgNoFile)
		return
	}
	defer upload.Close()

	slog.Info("[Server] Analyzing upload",
		slog.String("request_id", reqID),
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size))

	result, err := s.proc.Process(c.Request.Context(), upload)
	if err != nil {
		var badInput *pipeline.BadInputError
		if errors.As(err, &badInput) {
			slog.Warn("[Server] Rejected upload",
				slog.String("request_id", reqID),
				slog.String("error", err.Error()))
			c.String(http.StatusBadRequest, badInput.Msg)
			return
		}

		slog.Error("[Server] Failed to process upload",
			slog.String("request_id", reqID),
			slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, msgProcessFailed)
		return
	}

	slog.Info("[Server] Sending labeled CSV",
		slog.String("request_id", reqID),
		slog.String("filename", result.Filename),
		slog.Int("rows", result.Rows),
		slog.Int("fallbacks", result.Fallbacks))

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
	c.Data(http.StatusOK, "text/csv", result.Data)
}

func (s *Server) validToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.accessToken)) == 1
}
