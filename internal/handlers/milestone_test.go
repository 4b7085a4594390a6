package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-workspace-api/internal/constants"
	"github.com/yukikurage/project-workspace-api/internal/database"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"github.com/yukikurage/project-workspace-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MilestoneHandlerTestSuite defines the test suite for MilestoneHandler
type MilestoneHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *MilestoneHandler
}

// SetupTest runs before each test
func (suite *MilestoneHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Milestone{},
		&models.ActivityEvent{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	milestoneRepo := repository.NewMilestoneRepository(suite.db)
	activityRepo := repository.NewActivityRepository(suite.db)
	activityService := services.NewActivityService(activityRepo)
	milestoneService := services.NewMilestoneService(milestoneRepo, activityService)
	suite.handler = NewMilestoneHandler(milestoneService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *MilestoneHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *MilestoneHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *MilestoneHandlerTestSuite) createTestProject(name string) *models.Project {
	project := &models.Project{
		Name:       name,
		InviteCode: name + "_CODE",
	}
	suite.db.Create(project)
	return project
}

func (suite *MilestoneHandlerTestSuite) createTestMilestone(projectID uint64, title string) *models.Milestone {
	milestone := &models.Milestone{
		ProjectID: projectID,
		Title:     title,
		Status:    models.MilestoneStatusIncomplete,
	}
	suite.db.Create(milestone)
	return milestone
}

// Helper function to create a context with the membership middleware applied
func (suite *MilestoneHandlerTestSuite) createWorkspaceContext(method, url string, body []byte, userID uint64, project *models.Project) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyProject, project)

	return c, w
}

// TestCreateMilestone_Success tests successful milestone creation
func (suite *MilestoneHandlerTestSuite) TestCreateMilestone_Success() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")

	body, _ := json.Marshal(map[string]any{
		"title":   "Design phase",
		"cost":    1500.0,
		"summary": "Wireframes and mockups",
	})

	c, w := suite.createWorkspaceContext("POST", "/api/projects/1/milestones", body, user.ID, project)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.MilestoneDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Design phase", response.Title)
	assert.Equal(suite.T(), models.MilestoneStatusIncomplete, response.Status)
	assert.Equal(suite.T(), "-", response.StartDateDisplay)
	assert.Equal(suite.T(), "-", response.EndDateDisplay)

	// Creation reaches the activity feed
	var count int64
	suite.db.Model(&models.ActivityEvent{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestCreateMilestone_EmptyTitle tests rejection of a blank title
func (suite *MilestoneHandlerTestSuite) TestCreateMilestone_EmptyTitle() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")

	body, _ := json.Marshal(map[string]any{
		"title": "   ",
	})

	c, w := suite.createWorkspaceContext("POST", "/api/projects/1/milestones", body, user.ID, project)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateMilestone_NegativeCost tests rejection of a negative cost
func (suite *MilestoneHandlerTestSuite) TestCreateMilestone_NegativeCost() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")

	body, _ := json.Marshal(map[string]any{
		"title": "Design phase",
		"cost":  -10.0,
	})

	c, w := suite.createWorkspaceContext("POST", "/api/projects/1/milestones", body, user.ID, project)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSetStatus_Toggle tests the reversible status transition
func (suite *MilestoneHandlerTestSuite) TestSetStatus_Toggle() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")
	milestone := suite.createTestMilestone(project.ID, "Design phase")

	body, _ := json.Marshal(map[string]string{"status": "COMPLETED"})
	c, w := suite.createWorkspaceContext("PATCH", "/api/projects/1/milestones/1/status", body, user.ID, project)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.SetStatus(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.MilestoneDTO
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.MilestoneStatusCompleted, response.Status)

	// And back again: the transition is unrestricted
	body, _ = json.Marshal(map[string]string{"status": "INCOMPLETE"})
	c, w = suite.createWorkspaceContext("PATCH", "/api/projects/1/milestones/1/status", body, user.ID, project)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.SetStatus(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.MilestoneStatusIncomplete, response.Status)

	var stored models.Milestone
	suite.db.First(&stored, milestone.ID)
	assert.Equal(suite.T(), models.MilestoneStatusIncomplete, stored.Status)
}

// TestSetStatus_InvalidValue tests rejection of values outside the enum
func (suite *MilestoneHandlerTestSuite) TestSetStatus_InvalidValue() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")
	suite.createTestMilestone(project.ID, "Design phase")

	body, _ := json.Marshal(map[string]string{"status": "DONE"})
	c, w := suite.createWorkspaceContext("PATCH", "/api/projects/1/milestones/1/status", body, user.ID, project)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.SetStatus(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteMilestone_NotFound tests deleting an absent milestone
func (suite *MilestoneHandlerTestSuite) TestDeleteMilestone_NotFound() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")

	c, w := suite.createWorkspaceContext("DELETE", "/api/projects/1/milestones/99", nil, user.ID, project)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	suite.handler.Delete(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListMilestones tests listing in creation order
func (suite *MilestoneHandlerTestSuite) TestListMilestones() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")
	suite.createTestMilestone(project.ID, "First")
	suite.createTestMilestone(project.ID, "Second")

	other := suite.createTestProject("Other Project")
	suite.createTestMilestone(other.ID, "Elsewhere")

	c, w := suite.createWorkspaceContext("GET", "/api/projects/1/milestones", nil, user.ID, project)

	suite.handler.List(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Milestones []dto.MilestoneDTO `json:"milestones"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Milestones, 2)
	assert.Equal(suite.T(), "First", response.Milestones[0].Title)
	assert.Equal(suite.T(), "Second", response.Milestones[1].Title)
}

// TestListMilestones_StoreUnavailable tests the transport error mapping when
// the database is unreachable
func (suite *MilestoneHandlerTestSuite) TestListMilestones_StoreUnavailable() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	c, w := suite.createWorkspaceContext("GET", "/api/projects/1/milestones", nil, user.ID, project)

	suite.handler.List(c)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)

	var response apierrors.APIError
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), apierrors.ErrCodeTransport, response.Code)
}

// TestUpdateMilestone_CorruptStoredStatus tests the shape error mapping when
// a stored row carries a status outside the enum
func (suite *MilestoneHandlerTestSuite) TestUpdateMilestone_CorruptStoredStatus() {
	user := suite.createTestUser("creator")
	project := suite.createTestProject("Test Project")
	milestone := suite.createTestMilestone(project.ID, "Design phase")

	suite.Require().NoError(suite.db.Model(&models.Milestone{}).
		Where("id = ?", milestone.ID).
		Update("status", "ARCHIVED").Error)

	body, _ := json.Marshal(map[string]any{"title": "Design phase"})
	c, w := suite.createWorkspaceContext("PUT", "/api/projects/1/milestones/1", body, user.ID, project)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.Update(c)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)

	var response apierrors.APIError
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), apierrors.ErrCodeUnexpectedShape, response.Code)
}

// TestMilestoneHandlerTestSuite runs the test suite
func TestMilestoneHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MilestoneHandlerTestSuite))
}
