// Package application provides HTTP handlers for internship applications.
package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/database"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/utilities"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ApplicationController handles application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// applyInfo is the optional request body when applying.
type applyInfo struct {
	Message string `json:"message"`
}

// statusUpdateInfo is the request body for application status transitions.
// Message replaces the stored note only when present.
type statusUpdateInfo struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
}

// Apply submits an application from the calling student to an internship.
// Duplicate submissions are rejected by the unique (applicant, internship)
// index, so two concurrent applies cannot both succeed.
// @Summary Apply to an internship posting
// @Description Only student accounts with a completed profile can apply
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the internship to apply to"
// @Param Application body applyInfo false "Optional application message"
// @Success 201 {object} model.ApplicationResponse "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Closed posting, elapsed deadline or incomplete profile"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 404 {object} utilities.ErrorResponse "Internship not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/{id}/apply [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid internship id"})
		return
	}

	post := model.Internship{}
	if err := ac.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Internship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve internship: %s", err.Error()),
		})
		return
	}

	now := time.Now()
	if post.DeadlinePassed(now) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Application deadline has passed"})
		return
	}
	if !post.IsOpen(now) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Cannot apply to a closed internship"})
		return
	}

	if !user.HasCompleteProfile() {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Please complete your profile before applying",
		})
		return
	}

	// Body is optional, an empty request applies without a message
	info := applyInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&info); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	app := model.Application{
		ApplicantID:  user.ID,
		InternshipID: post.ID,
		Status:       model.ApplicationStatusApplied,
		Message:      info.Message,
	}

	if err := ac.DB.Create(&app).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Already applied"})
				return
			case pgForeignKeyViolation:
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Internship not found"})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create application: ", err),
		})
		return
	}

	app.Internship = post
	c.JSON(http.StatusCreated, app.ToResponse(false))
}

// GetMyApplications lists the calling student's applications, newest first.
// @Summary List applications submitted by the caller
// @Description Only student accounts have access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationResponse "Return the caller's applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/my [get]
func (ac *ApplicationController) GetMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var apps []model.Application
	if err := ac.DB.Preload("Internship").
		Where("applicant_id = ?", user.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	result := []model.ApplicationResponse{}
	for _, app := range apps {
		result = append(result, app.ToResponse(false))
	}

	c.JSON(http.StatusOK, result)
}

// GetReceivedApplications lists every application submitted to any of the
// calling employer's postings, newest first, with applicant details.
// @Summary List applications received across the caller's postings
// @Description Only employer accounts have access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationResponse "Return received applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/received [get]
func (ac *ApplicationController) GetReceivedApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var postIDs []uint
	if err := ac.DB.Model(&model.Internship{}).
		Where("posted_by_id = ?", user.ID).
		Pluck("id", &postIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch internships: ", err.Error()),
		})
		return
	}

	result := []model.ApplicationResponse{}
	if len(postIDs) == 0 {
		c.JSON(http.StatusOK, result)
		return
	}

	var apps []model.Application
	if err := ac.DB.Preload("Internship").Preload("Applicant").
		Where("internship_id IN ?", postIDs).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	for _, app := range apps {
		result = append(result, app.ToResponse(true))
	}

	c.JSON(http.StatusOK, result)
}

// GetApplicationsForInternship lists applications to one posting owned by the
// calling employer.
// @Summary List applications for a specific internship posting
// @Description Only the employer that owns the posting has access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the internship"
// @Success 200 {array} model.ApplicationResponse "Return the posting's applications"
// @Failure 400 {object} utilities.ErrorResponse "Malformed internship id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Posting owned by another employer"
// @Failure 404 {object} utilities.ErrorResponse "Internship not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/{id}/applications [get]
func (ac *ApplicationController) GetApplicationsForInternship(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid internship id"})
		return
	}

	post := model.Internship{}
	if err := ac.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Internship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve internship: %s", err.Error()),
		})
		return
	}

	if post.PostedByID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Forbidden"})
		return
	}

	var apps []model.Application
	if err := ac.DB.Preload("Internship").Preload("Applicant").
		Where("internship_id = ?", post.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	result := []model.ApplicationResponse{}
	for _, app := range apps {
		result = append(result, app.ToResponse(true))
	}

	c.JSON(http.StatusOK, result)
}

// UpdateApplicationStatus transitions the status of one application. Any
// valid status can be set from any current status, an employer may reopen a
// decided application.
// @Summary Update an application's status
// @Description Only the employer that owns the applied-to posting has access to this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the application"
// @Param Status body statusUpdateInfo true "New status and optional note"
// @Success 200 {object} model.ApplicationResponse "Successfully update status"
// @Failure 400 {object} utilities.ErrorResponse "Malformed id or invalid application status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Posting owned by another employer"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/status [put]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application id"})
		return
	}

	info := statusUpdateInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !model.ValidApplicationStatus(info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application status"})
		return
	}

	app := model.Application{}
	if err := ac.DB.Preload("Internship").
		Where("id = ?", id).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	// Ownership is decided by the applied-to posting, not the application row
	if app.Internship.PostedByID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Forbidden"})
		return
	}

	updates := map[string]interface{}{"status": info.Status}
	if info.Message != nil {
		updates["message"] = *info.Message
	}
	if err := ac.DB.Model(&app).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	if err := ac.DB.Preload("Internship").Preload("Applicant").
		Where("id = ?", app.ID).
		First(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, app.ToResponse(true))
}
