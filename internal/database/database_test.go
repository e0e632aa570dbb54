package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(tm *testing.M) {
	var err error
	var dbTeardown func(context.Context, ...testcontainers.TerminateOption) error
	dbTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	tm.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if dbTeardown != nil {
		_ = dbTeardown(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestSeededFixtures(t *testing.T) {
	assert.Equal(t, m.RoleStudent, TestStudent1.Role)
	assert.Equal(t, m.RoleEmployer, TestEmployer1.Role)
	assert.True(t, TestStudent1.HasCompleteProfile())
	assert.False(t, TestStudentBare.HasCompleteProfile())

	assert.Equal(t, TestEmployer1.ID, TestInternshipOpen.PostedByID)
	assert.True(t, TestInternshipOpen.IsOpen(time.Now()))
	assert.False(t, TestInternshipExpired.IsOpen(time.Now()))
	assert.False(t, TestInternshipClosed.IsOpen(time.Now()))
}

// The composite unique index on (applicant_id, internship_id) is the
// storage-level guard against duplicate applications.
func TestDuplicateApplicationRejected(t *testing.T) {
	first := m.Application{
		ApplicantID:  TestStudent2.ID,
		InternshipID: TestInternshipEvergreen.ID,
		Status:       m.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&first).Error)

	dup := m.Application{
		ApplicantID:  TestStudent2.ID,
		InternshipID: TestInternshipEvergreen.ID,
		Status:       m.ApplicationStatusApplied,
	}
	assert.Error(t, testDB.Create(&dup).Error)

	var count int64
	testDB.Model(&m.Application{}).
		Where("applicant_id = ? AND internship_id = ?", TestStudent2.ID, TestInternshipEvergreen.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	testDB.Delete(&first)
}

// Deleting an internship removes its applications through the FK constraint.
func TestDeleteInternshipCascadesApplications(t *testing.T) {
	post := m.Internship{
		PostedByID: TestEmployer1.ID,
		EditableInternshipInfo: m.EditableInternshipInfo{
			Title:   "Throwaway Intern",
			Company: "TechNova",
			Status:  m.InternshipStatusOpen,
		},
	}
	assert.NoError(t, testDB.Create(&post).Error)

	app := m.Application{
		ApplicantID:  TestStudent2.ID,
		InternshipID: post.ID,
		Status:       m.ApplicationStatusApplied,
	}
	assert.NoError(t, testDB.Create(&app).Error)

	assert.NoError(t, testDB.Delete(&post).Error)

	var count int64
	testDB.Model(&m.Application{}).Where("internship_id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
