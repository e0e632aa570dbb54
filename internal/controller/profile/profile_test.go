package profile

import (
	"context"
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
	controller := NewProfileController(db)

	group := r.Group("/api/v1")
	group.GET("/users/me", middleware.RequireAuth(db), controller.GetMyProfile)
	group.PUT("/users/me", middleware.RequireAuth(db), controller.EditMyProfile)
	group.GET("/users/count", controller.GetUserCount)

	return r
}

func TestGetMyProfile(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/users/me", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestStudent1.Email, resp["email"])
	assert.Equal(t, model.RoleStudent, resp["role"])
	// Password hash never leaves the server
	_, hasPassword := resp["password"]
	assert.False(t, hasPassword)
}

func TestGetMyProfileRequiresAuth(t *testing.T) {
	r := setupRouter(testDB)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/api/v1/users/me", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditMyProfile(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"about":    "Final year student looking for backend roles.",
		"location": "Sylhet",
	}, token, r, "/api/v1/users/me", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Final year student looking for backend roles.", resp["about"])
	assert.Equal(t, "Sylhet", resp["location"])
	// Omitted fields keep their value
	assert.Equal(t, database.TestStudent2.Name, resp["name"])
	assert.Equal(t, database.TestStudent2.University, resp["university"])

	t.Cleanup(func() {
		testDB.Model(&model.User{}).
			Where("id = ?", database.TestStudent2.ID).
			Updates(map[string]interface{}{"about": "", "location": ""})
	})
}

func TestEditMyProfileRejectsUnknownField(t *testing.T) {
	r := setupRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestStudent2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"role": model.RoleEmployer,
	}, token, r, "/api/v1/users/me", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var unchanged model.User
	assert.NoError(t, testDB.First(&unchanged, "id = ?", database.TestStudent2.ID).Error)
	assert.Equal(t, model.RoleStudent, unchanged.Role)
}

func TestGetUserCount(t *testing.T) {
	r := setupRouter(testDB)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/api/v1/users/count", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, resp["count"].(float64), float64(5))
}
