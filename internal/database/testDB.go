package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/shalakurjjamanshakib/InternshipFinder/internal/model"
	"github.com/shalakurjjamanshakib/InternshipFinder/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded accounts and postings for package tests.
var (
	// Students with complete profiles
	TestStudent1 m.User
	TestStudent2 m.User
	// Student without phone/university/degree/skills filled in
	TestStudentBare m.User

	TestEmployer1 m.User
	TestEmployer2 m.User

	// Shared plain password of every seeded account
	TestSeedPassword = "SeedPass123!"

	// Employer1: open with future deadline / open without deadline
	TestInternshipOpen      m.Internship
	TestInternshipEvergreen m.Internship
	// Employer2: deadline elapsed but status still "Open" / stored status "CLOSED"
	TestInternshipExpired m.Internship
	TestInternshipClosed  m.Internship
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample students, employers and internships if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	users := []m.User{
		{
			ID:       uuid.New(),
			Email:    "alice@example.com",
			Password: hashedPwd,
			Role:     m.RoleStudent,
			EditableUserInfo: m.EditableUserInfo{
				Name:       "Alice Rahman",
				Phone:      "0100000001",
				University: "Example University",
				Degree:     "BSc Computer Science",
				Skills:     pq.StringArray{"Go", "SQL"},
			},
		},
		{
			ID:       uuid.New(),
			Email:    "bob@example.com",
			Password: hashedPwd,
			Role:     m.RoleStudent,
			EditableUserInfo: m.EditableUserInfo{
				Name:       "Bob Chowdhury",
				Phone:      "0100000002",
				University: "Example Institute of Technology",
				Degree:     "BSc Software Engineering",
				Skills:     pq.StringArray{"JavaScript", "React"},
			},
		},
		{
			ID:       uuid.New(),
			Email:    "carol@example.com",
			Password: hashedPwd,
			Role:     m.RoleStudent,
			EditableUserInfo: m.EditableUserInfo{
				Name: "Carol Islam",
			},
		},
		{
			ID:       uuid.New(),
			Email:    "hr@technova.example.com",
			Password: hashedPwd,
			Role:     m.RoleEmployer,
			EditableUserInfo: m.EditableUserInfo{
				Name:    "TechNova HR",
				Company: "TechNova",
			},
		},
		{
			ID:       uuid.New(),
			Email:    "jobs@dataforge.example.com",
			Password: hashedPwd,
			Role:     m.RoleEmployer,
			EditableUserInfo: m.EditableUserInfo{
				Name:    "DataForge Recruiting",
				Company: "DataForge",
			},
		},
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Email {
		case "alice@example.com":
			TestStudent1 = u
		case "bob@example.com":
			TestStudent2 = u
		case "carol@example.com":
			TestStudentBare = u
		case "hr@technova.example.com":
			TestEmployer1 = u
		case "jobs@dataforge.example.com":
			TestEmployer2 = u
		}
	}

	futureDeadline := time.Now().AddDate(0, 1, 0)
	pastDeadline := time.Now().AddDate(0, 0, -1)
	minSalary, maxSalary := 10000, 20000

	internships := []m.Internship{
		{
			PostedByID: TestEmployer1.ID,
			EditableInternshipInfo: m.EditableInternshipInfo{
				Title:        "Backend Engineer Intern",
				Company:      "TechNova",
				Location:     "Dhaka (Hybrid)",
				Category:     "Engineering",
				Mode:         "Hybrid",
				Duration:     "3 months",
				MinSalary:    &minSalary,
				MaxSalary:    &maxSalary,
				Description:  "Work on Go services and database layers.",
				Requirements: pq.StringArray{"Go basics", "SQL familiarity"},
				Status:       m.InternshipStatusOpen,
				ApplyBy:      &futureDeadline,
			},
		},
		{
			PostedByID: TestEmployer1.ID,
			EditableInternshipInfo: m.EditableInternshipInfo{
				Title:        "Frontend Developer Intern",
				Company:      "TechNova",
				Location:     "Remote",
				Category:     "Engineering",
				Mode:         "Remote",
				Duration:     "6 months",
				Description:  "Assist building a component library.",
				Requirements: pq.StringArray{"JS/TS fundamentals"},
				Status:       m.InternshipStatusOpen,
			},
		},
		{
			PostedByID: TestEmployer2.ID,
			EditableInternshipInfo: m.EditableInternshipInfo{
				Title:        "Data Analyst Intern",
				Company:      "DataForge",
				Location:     "Chattogram (On-site)",
				Category:     "Data",
				Mode:         "On-site",
				Duration:     "3 months",
				Description:  "Support data cleansing and dashboards.",
				Requirements: pq.StringArray{"SQL", "basic statistics"},
				Status:       m.InternshipStatusOpen,
				ApplyBy:      &pastDeadline,
			},
		},
		{
			PostedByID: TestEmployer2.ID,
			EditableInternshipInfo: m.EditableInternshipInfo{
				Title:       "Marketing Intern",
				Company:     "DataForge",
				Location:    "Dhaka",
				Category:    "Marketing",
				Mode:        "On-site",
				Duration:    "2 months",
				Description: "Campaign support.",
				Status:      "CLOSED",
			},
		},
	}

	if err := db.Create(&internships).Error; err != nil {
		return err
	}

	TestInternshipOpen = internships[0]
	TestInternshipEvergreen = internships[1]
	TestInternshipExpired = internships[2]
	TestInternshipClosed = internships[3]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("email IN ?", []string{
		"alice@example.com", "bob@example.com", "carol@example.com",
		"hr@technova.example.com", "jobs@dataforge.example.com",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Email {
		case "alice@example.com":
			TestStudent1 = u
		case "bob@example.com":
			TestStudent2 = u
		case "carol@example.com":
			TestStudentBare = u
		case "hr@technova.example.com":
			TestEmployer1 = u
		case "jobs@dataforge.example.com":
			TestEmployer2 = u
		}
	}

	var internships []m.Internship
	if err := db.Order("id ASC").Limit(4).Find(&internships).Error; err != nil {
		return err
	}
	if len(internships) > 0 {
		TestInternshipOpen = internships[0]
	}
	if len(internships) > 1 {
		TestInternshipEvergreen = internships[1]
	}
	if len(internships) > 2 {
		TestInternshipExpired = internships[2]
	}
	if len(internships) > 3 {
		TestInternshipClosed = internships[3]
	}

	return nil
}
