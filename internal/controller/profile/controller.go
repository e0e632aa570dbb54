// Package profile provides HTTP handlers for user profile management.
package profile

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/database"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/utilities"
)

// ProfileController handles profile related endpoints
type ProfileController struct {
	DB *database.DBinstanceStruct
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(db *database.DBinstanceStruct) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

// GetMyProfile returns the calling user's own account record.
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.User "Return the caller's profile"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /users/me [get]
func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// EditMyProfile merges non-empty fields of the request body into the calling
// user's profile. Email, role and id cannot be changed here.
// @Summary Edit the caller's profile
// @Description Only fields present and non-empty in the body are written
// @Tags Profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.EditableUserInfo true "Fields to change"
// @Success 200 {object} model.User "Return the updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid profile struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/me [put]
func (pc *ProfileController) EditMyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := model.EditableUserInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&user.EditableUserInfo, &info)

	if err := pc.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserCount reports how many accounts exist. Used by the landing page.
// @Summary Count registered users
// @Tags Profile
// @Produce json
// @Success 200 {object} map[string]int64 "Return the number of registered accounts"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/count [get]
func (pc *ProfileController) GetUserCount(c *gin.Context) {
	var count int64
	if err := pc.DB.Model(&model.User{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to count users: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
