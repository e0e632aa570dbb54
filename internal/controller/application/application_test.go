package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/auth"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/database"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/middleware"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}
	testDB = db
	gin.SetMode(gin.TestMode)

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown test database: %v", err)
		}
	}
	os.Exit(code)
}

func setupRouter(db *database.DBinstanceStruct) *gin.Engine {
	r := gin.New()
	controller := NewApplicationController(db)

	group := r.Group("/api/v1")
	group.POST("/internships/:id/apply",
		middleware.RequireAuth(db), middleware.CheckRole(model.RoleStudent),
		controller.Apply)
	group.GET("/applications/my",
		middleware.RequireAuth(db), middleware.CheckRole(model.RoleStudent),
		controller.GetMyApplications)
	group.GET("/applications/received",
		middleware.RequireAuth(db), middleware.CheckRole(model.RoleEmployer),
		controller.GetReceivedApplications)
	group.GET("/internships/:id/applications",
		middleware.RequireAuth(db), middleware.CheckRole(model.RoleEmployer),
		controller.GetApplicationsForInternship)
	group.PUT("/applications/:id/status",
		middleware.RequireAuth(db), middleware.CheckRole(model.RoleEmployer),
		controller.UpdateApplicationStatus)

	return r
}

// removeApplication deletes the seeded application row after a test.
func removeApplication(t *testing.T, applicantID interface{}, internshipID uint) {
	t.Cleanup(func() {
		testDB.Where("applicant_id = ? AND internship_id = ?", applicantID, internshipID).
			Delete(&model.Application{})
	})
}

func applyEndpoint(internshipID uint) string {
	return fmt.Sprintf("/api/v1/internships/%d/apply", internshipID)
}

func TestApply(t *testing.T) {
	r := setupRouter(testDB)
	removeApplication(t, database.TestStudent2.ID, database.TestInternshipEvergreen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"message": "Very interested in this role.",
	}, token, r, applyEndpoint(database.TestInternshipEvergreen.ID), http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.ApplicationStatusApplied, resp["status"])
	assert.Equal(t, "Very interested in this role.", resp["message"])
	assert.Equal(t, database.TestStudent2.ID.String(), resp["applicant_id"])

	embedded := resp["internship"].(map[string]interface{})
	assert.Equal(t, database.TestInternshipEvergreen.Title, embedded["title"])

	// Student-facing payloads never carry the applicant excerpt
	_, hasApplicant := resp["applicant"]
	assert.False(t, hasApplicant)
}

func TestApplyWithoutBody(t *testing.T) {
	r := setupRouter(testDB)
	removeApplication(t, database.TestStudent1.ID, database.TestInternshipEvergreen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		applyEndpoint(database.TestInternshipEvergreen.ID), http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.ApplicationStatusApplied, resp["status"])
}

func TestApplyTwiceConflicts(t *testing.T) {
	r := setupRouter(testDB)
	removeApplication(t, database.TestStudent1.ID, database.TestInternshipOpen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipOpen.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipOpen.ID), http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Already applied", resp["error"])

	var count int64
	testDB.Model(&model.Application{}).
		Where("applicant_id = ? AND internship_id = ?", database.TestStudent1.ID, database.TestInternshipOpen.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestApplyDeadlinePassed(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipExpired.ID), http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Application deadline has passed", resp["error"])
}

func TestApplyClosedInternship(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipClosed.ID), http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot apply to a closed internship", resp["error"])
}

func TestApplyIncompleteProfile(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudentBare.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipOpen.ID), http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please complete your profile before applying", resp["error"])
}

func TestApplyInternshipNotFound(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r,
		"/api/v1/internships/999999/apply", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Internship not found", resp["error"])
}

func TestApplyRequiresStudent(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{}, token, r,
		applyEndpoint(database.TestInternshipOpen.ID), http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMyApplications(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent1.ID,
		InternshipID: database.TestInternshipEvergreen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent1.ID, database.TestInternshipEvergreen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONListRequest(token, r, "/api/v1/applications/my", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(resp), 1)

	found := false
	for _, item := range resp {
		assert.Equal(t, database.TestStudent1.ID.String(), item["applicant_id"])
		_, hasApplicant := item["applicant"]
		assert.False(t, hasApplicant)
		embedded := item["internship"].(map[string]interface{})
		if embedded["title"] == database.TestInternshipEvergreen.Title {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetReceivedApplications(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent2.ID,
		InternshipID: database.TestInternshipOpen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent2.ID, database.TestInternshipOpen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONListRequest(token, r, "/api/v1/applications/received", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(resp), 1)

	found := false
	for _, item := range resp {
		embedded := item["internship"].(map[string]interface{})
		assert.Equal(t, database.TestEmployer1.ID.String(), embedded["posted_by"])
		applicant, ok := item["applicant"].(map[string]interface{})
		assert.True(t, ok)
		if applicant["email"] == database.TestStudent2.Email {
			found = true
			assert.Equal(t, database.TestStudent2.University, applicant["university"])
		}
	}
	assert.True(t, found)
}

func TestGetApplicationsForInternship(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent2.ID,
		InternshipID: database.TestInternshipEvergreen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent2.ID, database.TestInternshipEvergreen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	endpoint := fmt.Sprintf("/api/v1/internships/%d/applications", database.TestInternshipEvergreen.ID)
	rec, resp := testutil.MakeJSONListRequest(token, r, endpoint, http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, len(resp))

	applicant := resp[0]["applicant"].(map[string]interface{})
	assert.Equal(t, database.TestStudent2.Email, applicant["email"])
}

func TestGetApplicationsForInternshipNotOwner(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	endpoint := fmt.Sprintf("/api/v1/internships/%d/applications", database.TestInternshipEvergreen.ID)
	req, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)

	assert.Equal(t, http.StatusForbidden, req.Code)
	assert.Equal(t, "Forbidden", resp["error"])
}

func TestUpdateApplicationStatus(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent2.ID,
		InternshipID: database.TestInternshipOpen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent2.ID, database.TestInternshipOpen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	endpoint := fmt.Sprintf("/api/v1/applications/%d/status", app.ID)
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status":  model.ApplicationStatusUnderReview,
		"message": "Shortlisted for interview",
	}, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusUnderReview, resp["status"])
	assert.Equal(t, "Shortlisted for interview", resp["message"])

	applicant := resp["applicant"].(map[string]interface{})
	assert.Equal(t, database.TestStudent2.Email, applicant["email"])

	// Terminal states are revisitable
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusRejected,
	}, token, r, endpoint, http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusRejected, resp["status"])

	rec, resp = testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusUnderReview,
	}, token, r, endpoint, http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusUnderReview, resp["status"])
	// Absent message leaves the stored note untouched
	assert.Equal(t, "Shortlisted for interview", resp["message"])

	// Setting the same status again is a no-op with an identical response
	rec, first := testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusAccepted,
	}, token, r, endpoint, http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, second := testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusAccepted,
	}, token, r, endpoint, http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first["status"], second["status"])
	assert.Equal(t, first["message"], second["message"])
	assert.Equal(t, first["id"], second["id"])
}

func TestUpdateApplicationStatusInvalid(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent1.ID,
		InternshipID: database.TestInternshipEvergreen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent1.ID, database.TestInternshipEvergreen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	endpoint := fmt.Sprintf("/api/v1/applications/%d/status", app.ID)
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": "hired",
	}, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid application status", resp["error"])
}

func TestUpdateApplicationStatusNotOwner(t *testing.T) {
	r := setupRouter(testDB)

	app := model.Application{
		ApplicantID:  database.TestStudent1.ID,
		InternshipID: database.TestInternshipOpen.ID,
		Status:       model.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)
	removeApplication(t, database.TestStudent1.ID, database.TestInternshipOpen.ID)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	endpoint := fmt.Sprintf("/api/v1/applications/%d/status", app.ID)
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusAccepted,
	}, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", resp["error"])
}

func TestUpdateApplicationStatusNotFound(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": model.ApplicationStatusAccepted,
	}, token, r, "/api/v1/applications/999999/status", http.MethodPut)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Application not found", resp["error"])
}
