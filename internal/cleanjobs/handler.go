package cleanjobs

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"contactcleaner/internal/auth"
	"contactcleaner/internal/contacts"
	"contactcleaner/internal/export"
	"contactcleaner/internal/progress"
	"contactcleaner/internal/source"
	"contactcleaner/pkg/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// progress events are throttled to every progressEvery records
const progressEvery = 25

type Config struct {
	Policy         contacts.KeyPolicy
	MaxUploadBytes int64
	TempDir        string
	Log            *zap.SugaredLogger
}

type Handler struct {
	Repo   *Repo         // nil disables job history
	Hub    *progress.Hub // nil disables the event feed
	Reader source.Reader
	Cfg    Config
}

func NewHandler(repo *Repo, hub *progress.Hub, reader source.Reader, cfg Config) *Handler {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	return &Handler{Repo: repo, Hub: hub, Reader: reader, Cfg: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contacts/clean", h.clean)
	rg.GET("/jobs", h.listJobs)
	rg.GET("/jobs/:id", h.getJob)
}

// clean runs one upload through the whole pipeline: spool to disk, read
// raw records, normalize and deduplicate, export, respond with the
// cleaned workbook. All failures are terminal for the upload; the user
// re-submits.
func (h *Handler) clean(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	filename := filepath.Base(fileHeader.Filename)
	if source.Type(filename) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type (want .csv, .xlsx, .xls or .pst)"})
		return
	}
	if h.Cfg.MaxUploadBytes > 0 && fileHeader.Size > h.Cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	jobID := uuid.NewString()
	spool := filepath.Join(h.Cfg.TempDir, jobID+strings.ToLower(filepath.Ext(filename)))
	if err := c.SaveUploadedFile(fileHeader, spool); err != nil {
		h.Cfg.Log.Errorw("spool upload failed", "job", jobID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}
	defer os.Remove(spool)

	h.broadcast(progress.Started(jobID, filename))
	h.broadcast(progress.Progress(jobID, progress.StageReading, 0, 0))

	records, err := h.Reader.Read(c.Request.Context(), spool, filename)
	if err != nil {
		h.broadcast(progress.Failed(jobID, err.Error()))

		var readErr *source.ReadError
		switch {
		case errors.Is(err, source.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		case errors.As(err, &readErr):
			h.Cfg.Log.Warnw("source read failed", "job", jobID, "file", filename, "err", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Cfg.Log.Errorw("source read failed", "job", jobID, "file", filename, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
		}
		return
	}

	sum := contacts.Clean(records, contacts.Options{
		Policy: h.Cfg.Policy,
		OnProgress: func(done, total int) {
			if done%progressEvery == 0 || done == total {
				h.broadcast(progress.Progress(jobID, progress.StageCleaning, done, total))
			}
		},
	})

	if len(sum.Contacts) == 0 {
		h.broadcast(progress.Failed(jobID, "no contacts found"))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "no contacts found in file",
			"total_records": sum.Total,
			"rejected":      sum.RejectedTotal(),
		})
		return
	}

	h.broadcast(progress.Progress(jobID, progress.StageExporting, sum.Total, sum.Total))

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sum.Contacts); err != nil {
		h.Cfg.Log.Errorw("export failed", "job", jobID, "err", err)
		h.broadcast(progress.Failed(jobID, "export failed"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	h.record(c, jobID, filename, sum)
	h.broadcast(progress.Completed(jobID, len(sum.Contacts), sum.Duplicates, sum.RejectedTotal()))

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "cleaned_"+stem+".xlsx"))
	c.Header("X-Job-ID", jobID)
	c.Header("X-Total-Records", strconv.Itoa(sum.Total))
	c.Header("X-Unique-Contacts", strconv.Itoa(len(sum.Contacts)))
	c.Header("X-Duplicates-Removed", strconv.Itoa(sum.Duplicates))
	c.Header("X-Rejected-Records", strconv.Itoa(sum.RejectedTotal()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// record persists the job outcome when both history storage and an
// authenticated user are present.
func (h *Handler) record(c *gin.Context, jobID, filename string, sum contacts.Summary) {
	claims := auth.MustGetClaims(c)
	if h.Repo == nil || claims == nil {
		return
	}

	job := models.CleanJob{
		ID:             jobID,
		UserID:         claims.UserID,
		Filename:       filename,
		SourceType:     source.Type(filename),
		TotalRecords:   sum.Total,
		UniqueContacts: len(sum.Contacts),
		Duplicates:     sum.Duplicates,
		Rejected:       sum.RejectedTotal(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), job); err != nil {
		// history is best effort, the user still gets the download
		h.Cfg.Log.Errorw("record job failed", "job", jobID, "err", err)
	}
}

func (h *Handler) listJobs(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if h.Repo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history disabled"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	total, err := h.Repo.CountByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}

	items, err := h.Repo.ListByUser(c.Request.Context(), claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) getJob(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if h.Repo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history disabled"})
		return
	}

	job, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if job == nil || job.UserID != claims.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) broadcast(ev progress.JobEvent) {
	if h.Hub != nil {
		h.Hub.Broadcast(ev)
	}
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
