// Package internship provides HTTP handlers for internship posting operations.
package internship

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/database"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/utilities"
)

// InternshipController handles internship posting related endpoints
type InternshipController struct {
	DB *database.DBinstanceStruct
}

// NewInternshipController creates a new instance of InternshipController
func NewInternshipController(db *database.DBinstanceStruct) *InternshipController {
	return &InternshipController{
		DB: db,
	}
}

// parseID rejects identifiers that are not well-formed references.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// GetInternships fetches every internship posting and returns them with
// derived openness as a JSON response. Filtering is a client concern.
// @Summary List all internship postings
// @Description Public endpoint, no filtering server-side
// @Tags Internship
// @Produce json
// @Success 200 {array} model.InternshipResponse "Return every internship posting"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships [get]
func (ic *InternshipController) GetInternships(c *gin.Context) {

	var rawPosts []model.Internship

	if err := ic.DB.Preload("PostedBy").Find(&rawPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch internships: ", err.Error()),
		})
		return
	}

	now := time.Now()
	posts := []model.InternshipResponse{}
	for _, rawPost := range rawPosts {
		posts = append(posts, rawPost.ToResponse(now))
	}

	c.JSON(http.StatusOK, posts)
}

// GetMyInternships fetches the internships posted by the calling employer.
// The route is registered as /internships/:id/list and only serves the
// literal path /internships/my/list; gin cannot mix the static "my" segment
// with the :id wildcard.
// @Summary List internships posted by the caller
// @Description Only employer accounts have access to this endpoint
// @Tags Internship
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.InternshipResponse "Return the caller's internships"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/my/list [get]
func (ic *InternshipController) GetMyInternships(c *gin.Context) {
	if c.Param("id") != "my" {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
		return
	}

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rawPosts []model.Internship
	if err := ic.DB.Preload("PostedBy").
		Where("posted_by_id = ?", user.ID).
		Find(&rawPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch internships: ", err.Error()),
		})
		return
	}

	now := time.Now()
	posts := []model.InternshipResponse{}
	for _, rawPost := range rawPosts {
		posts = append(posts, rawPost.ToResponse(now))
	}

	c.JSON(http.StatusOK, posts)
}

// GetInternshipByID fetches one internship posting by its ID.
// @Summary Get internship posting by ID
// @Tags Internship
// @Produce json
// @Param id path integer true "ID of desired internship"
// @Success 200 {object} model.InternshipResponse "Return the internship with the specified ID"
// @Failure 400 {object} utilities.ErrorResponse "Malformed internship id"
// @Failure 404 {object} utilities.ErrorResponse "Internship not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/{id} [get]
func (ic *InternshipController) GetInternshipByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid internship id"})
		return
	}

	post := model.Internship{}
	if err := ic.DB.Preload("PostedBy").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Internship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve internship: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, post.ToResponse(time.Now()))
}

// CreateInternship handles the creation of a new internship posting by an employer.
// @Summary Create internship posting based on given json structure
// @Description Only employer accounts have access to this endpoint
// @Tags Internship
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Internship body model.EditableInternshipInfo true "Input internship information"
// @Success 201 {object} model.Internship "Successfully create internship posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid internship struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships [post]
func (ic *InternshipController) CreateInternship(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	post := model.Internship{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&post.EditableInternshipInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if post.Status == "" {
		post.Status = model.InternshipStatusOpen
	}
	if !model.ValidInternshipStatus(post.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid internship status: %s", post.Status),
		})
		return
	}

	post.PostedByID = user.ID
	if err := ic.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create internship: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// EditInternship allows an employer to update an internship posting they own.
// @Summary Edit internship posting based on given json structure
// @Description Only the employer that owns the posting has access to this endpoint
// @Tags Internship
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired internship"
// @Param Internship body model.EditableInternshipInfo true "Fields to change"
// @Success 200 {object} model.Internship "Successfully update internship posting"
// @Failure 400 {object} utilities.ErrorResponse "Malformed id or invalid internship struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to edit"
// @Failure 404 {object} utilities.ErrorResponse "Internship not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/{id} [put]
func (ic *InternshipController) EditInternship(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid internship id"})
		return
	}

	post := model.Internship{}

	if err := ic.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Internship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve internship: %s", err.Error()),
		})
		return
	}

	// Ownership: the posting must belong to the requesting employer.
	// Compare as strings to avoid type mismatches
	if post.PostedByID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to edit this internship",
		})
		return
	}

	// Bind into the editable subset only, so id, owner and timestamps stay intact
	updated := model.Internship{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updated.EditableInternshipInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if updated.Status != "" && !model.ValidInternshipStatus(updated.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid internship status: %s", updated.Status),
		})
		return
	}

	// The application deadline is fixed when the posting is created
	updated.ApplyBy = nil

	if err := ic.DB.Model(&post).Updates(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update internship: %s", err.Error()),
		})
		return
	}

	// Reload the posting to return the latest data
	if err := ic.DB.Where("id = ?", post.ID).First(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated internship: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeleteInternship allows an employer to delete an internship posting they own.
// Dependent applications are removed by the cascading FK constraint.
// @Summary Delete given internship posting ID
// @Description Only the employer that owns the posting has access to this endpoint
// @Tags Internship
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired internship"
// @Success 200 {object} utilities.MessageResponse "Successfully delete internship posting"
// @Failure 400 {object} utilities.ErrorResponse "Malformed internship id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to delete this posting"
// @Failure 404 {object} utilities.ErrorResponse "Internship not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /internships/{id} [delete]
func (ic *InternshipController) DeleteInternship(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid internship id"})
		return
	}

	post := model.Internship{}
	if err := ic.DB.Where("id = ?", id).First(&post).Error; err != nil {
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
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to delete this internship",
		})
		return
	}

	if err := ic.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete internship: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Deleted"})
}
