// Package file provides HTTP handlers for resume upload and download.
package file

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/database"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/utilities"
)

// FileController handles resume file endpoints
type FileController struct {
	DB *database.DBinstanceStruct
}

// NewFileController creates a new instance of FileController
func NewFileController(db *database.DBinstanceStruct) *FileController {
	return &FileController{
		DB: db,
	}
}

// UploadResume stores the caller's resume and records its served path on the
// profile. Re-uploading replaces the previous blob.
// @Summary Upload the caller's resume as a PDF
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param resume formData file true "Resume file, PDF only"
// @Success 200 {object} model.User "Return the profile with the new resume path"
// @Failure 400 {object} utilities.ErrorResponse "Missing or unreadable file"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "Not a PDF"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/me/resume [post]
func (fc *FileController) UploadResume(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	header, err := c.FormFile("resume")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Uploaded file is too large",
			})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Missing form file field: resume",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: "Only PDF resumes are accepted",
		})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to open uploaded file: %s", err.Error()),
		})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read uploaded file: %s", err.Error()),
		})
		return
	}

	blob := model.File{
		Content:   content,
		Extension: ext,
	}

	previousFileID := user.ResumeFileID

	err = fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&blob).Error; err != nil {
			return err
		}

		user.ResumeFileID = &blob.ID
		user.Resume = fmt.Sprintf("/api/v1/files/%d", blob.ID)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if previousFileID != nil {
			if err := tx.Delete(&model.File{}, *previousFileID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store resume: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetFile serves a stored blob by id.
// @Summary Download a stored file
// @Tags File
// @Produce application/pdf
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the file"
// @Success 200 {file} binary "Return the file content"
// @Failure 400 {object} utilities.ErrorResponse "Malformed file id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /files/{id} [get]
func (fc *FileController) GetFile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid file id"})
		return
	}

	blob := model.File{}
	if err := fc.DB.Where("id = ?", id).First(&blob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	contentType := "application/octet-stream"
	if blob.Extension == ".pdf" {
		contentType = "application/pdf"
	}

	c.Data(http.StatusOK, contentType, blob.Content)
}
