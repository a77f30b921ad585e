package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uchannel/uchannel-backend/internal/constants"
	"github.com/uchannel/uchannel-backend/internal/dto"
	"github.com/uchannel/uchannel-backend/internal/models"
	"github.com/uchannel/uchannel-backend/internal/repository"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{}, &models.Message{})
	suite.Require().NoError(err)

	suite.service = NewTaskService(repository.NewTaskRepository(suite.db))
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) newRequest(title string) dto.TaskRequest {
	return dto.TaskRequest{
		Title:     title,
		Category:  "晨间冥想",
		StartTime: "07:00",
		EndTime:   "07:30",
		TaskDate:  "2024-06-01",
		Priority:  "普通",
	}
}

func (suite *TaskServiceTestSuite) createTask(title string) *dto.TaskDTO {
	task, err := suite.service.Create(constants.DefaultUserID, suite.newRequest(title))
	suite.Require().NoError(err)
	return task
}

func (suite *TaskServiceTestSuite) TestCreate_SetsPendingAndTimestamps() {
	task := suite.createTask("Morning meditation")

	assert.Equal(suite.T(), models.TaskStatusPending, task.Status)
	assert.Nil(suite.T(), task.CompletedAt)
	assert.False(suite.T(), task.CreatedAt.IsZero())
	assert.NotZero(suite.T(), task.ID)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Nil(suite.T(), stored.CompletedAt)
	assert.Nil(suite.T(), stored.CancelledAt)
}

func (suite *TaskServiceTestSuite) TestCreate_AppliesDefaults() {
	req := suite.newRequest("Deep work block")
	req.Category = "深度工作"

	task, err := suite.service.Create(constants.DefaultUserID, req)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "#5A8A83", task.CategoryColor)
	assert.Equal(suite.T(), "auto_awesome", task.IconName)
	assert.Equal(suite.T(), "work", task.Tag)
}

func (suite *TaskServiceTestSuite) TestCreate_PriorityRuleBeatsCategoryRule() {
	req := suite.newRequest("Dinner")
	req.Category = "社交"
	req.Priority = "紧急"

	task, err := suite.service.Create(constants.DefaultUserID, req)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "highPriority", task.Tag)
}

func (suite *TaskServiceTestSuite) TestCreate_TitleRequired() {
	req := suite.newRequest("")

	_, err := suite.service.Create(constants.DefaultUserID, req)
	assert.ErrorIs(suite.T(), err, ErrTitleRequired)
}

func (suite *TaskServiceTestSuite) TestCreate_RejectsUnpaddedDate() {
	req := suite.newRequest("Sloppy date")
	req.TaskDate = "2024-6-1"

	_, err := suite.service.Create(constants.DefaultUserID, req)
	assert.ErrorIs(suite.T(), err, ErrInvalidTaskDate)
}

func (suite *TaskServiceTestSuite) TestCreate_ReadAfterWrite() {
	created := suite.createTask("Round trip")

	fetched, err := suite.service.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(fetched)
	assert.Equal(suite.T(), *created, *fetched)
}

func (suite *TaskServiceTestSuite) TestListAll_ChronologicalOrder() {
	late := suite.newRequest("Late")
	late.TaskDate = "2024-06-02"
	late.StartTime = "09:00"
	early := suite.newRequest("Early")
	early.TaskDate = "2024-06-01"
	early.StartTime = "08:00"
	mid := suite.newRequest("Mid")
	mid.TaskDate = "2024-06-01"
	mid.StartTime = "12:00"

	for _, req := range []dto.TaskRequest{late, early, mid} {
		_, err := suite.service.Create(constants.DefaultUserID, req)
		suite.Require().NoError(err)
	}

	tasks, err := suite.service.ListAll(constants.DefaultUserID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	assert.Equal(suite.T(), "Early", tasks[0].Title)
	assert.Equal(suite.T(), "Mid", tasks[1].Title)
	assert.Equal(suite.T(), "Late", tasks[2].Title)
}

func (suite *TaskServiceTestSuite) TestListByDate_FiltersAndOrders() {
	target := suite.newRequest("On date B")
	target.TaskDate = "2024-06-01"
	target.StartTime = "10:00"
	target2 := suite.newRequest("On date A")
	target2.TaskDate = "2024-06-01"
	target2.StartTime = "08:00"
	other := suite.newRequest("Other date")
	other.TaskDate = "2024-06-02"

	for _, req := range []dto.TaskRequest{target, target2, other} {
		_, err := suite.service.Create(constants.DefaultUserID, req)
		suite.Require().NoError(err)
	}

	tasks, err := suite.service.ListByDate(constants.DefaultUserID, "2024-06-01")
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	assert.Equal(suite.T(), "On date A", tasks[0].Title)
	assert.Equal(suite.T(), "On date B", tasks[1].Title)
	for _, task := range tasks {
		assert.Equal(suite.T(), "2024-06-01", task.TaskDate)
	}
}

func (suite *TaskServiceTestSuite) TestListByStatus() {
	first := suite.createTask("Will complete")
	suite.createTask("Stays pending")

	done, err := suite.service.Complete(first.ID)
	suite.Require().NoError(err)
	suite.Require().True(done)

	pending, err := suite.service.ListPending(constants.DefaultUserID)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	assert.Equal(suite.T(), "Stays pending", pending[0].Title)

	completed, err := suite.service.ListCompleted(constants.DefaultUserID)
	suite.Require().NoError(err)
	suite.Require().Len(completed, 1)
	assert.Equal(suite.T(), "Will complete", completed[0].Title)
}

func (suite *TaskServiceTestSuite) TestGetByID_AbsenceIsNotAnError() {
	task, err := suite.service.GetByID(9999)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), task)
}

func (suite *TaskServiceTestSuite) TestComplete_SecondCallReturnsFalse() {
	task := suite.createTask("Finish once")

	done, err := suite.service.Complete(task.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), done)

	var afterFirst models.Task
	suite.Require().NoError(suite.db.First(&afterFirst, task.ID).Error)
	suite.Require().NotNil(afterFirst.CompletedAt)
	firstStamp := *afterFirst.CompletedAt

	done, err = suite.service.Complete(task.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), done)

	var afterSecond models.Task
	suite.Require().NoError(suite.db.First(&afterSecond, task.ID).Error)
	suite.Require().NotNil(afterSecond.CompletedAt)
	assert.Equal(suite.T(), firstStamp, *afterSecond.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestComplete_MissingTaskReturnsFalse() {
	done, err := suite.service.Complete(9999)
	suite.Require().NoError(err)
	assert.False(suite.T(), done)
}

func (suite *TaskServiceTestSuite) TestCompleteAndCancelAreMutuallyExclusive() {
	task := suite.createTask("Only one exit")

	done, err := suite.service.Cancel(task.ID)
	suite.Require().NoError(err)
	suite.Require().True(done)

	done, err = suite.service.Complete(task.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), done)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Equal(suite.T(), models.TaskStatusCancelled, stored.Status)
	assert.NotNil(suite.T(), stored.CancelledAt)
	assert.Nil(suite.T(), stored.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestUpdate_PreservesLifecycleFields() {
	task := suite.createTask("Before")

	req := suite.newRequest("After")
	req.Category = "深度工作"
	updated, err := suite.service.Update(task.ID, req)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)

	assert.Equal(suite.T(), "After", updated.Title)
	assert.Equal(suite.T(), "#5A8A83", updated.CategoryColor)
	assert.Equal(suite.T(), models.TaskStatusPending, updated.Status)
	assert.Equal(suite.T(), task.CreatedAt, updated.CreatedAt)
	assert.Equal(suite.T(), task.ID, updated.ID)
}

func (suite *TaskServiceTestSuite) TestUpdate_DoesNotResurrectTerminalStatus() {
	task := suite.createTask("Terminal")

	done, err := suite.service.Complete(task.ID)
	suite.Require().NoError(err)
	suite.Require().True(done)

	updated, err := suite.service.Update(task.ID, suite.newRequest("Renamed"))
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)

	assert.Equal(suite.T(), "Renamed", updated.Title)
	assert.Equal(suite.T(), models.TaskStatusCompleted, updated.Status)
	assert.NotNil(suite.T(), updated.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestUpdate_MissingTaskReturnsNil() {
	updated, err := suite.service.Update(9999, suite.newRequest("Ghost"))
	suite.Require().NoError(err)
	assert.Nil(suite.T(), updated)
}

func (suite *TaskServiceTestSuite) TestDelete() {
	task := suite.createTask("Doomed")

	deleted, err := suite.service.Delete(task.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), deleted)

	fetched, err := suite.service.GetByID(task.ID)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), fetched)

	deleted, err = suite.service.Delete(task.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), deleted)
}

func (suite *TaskServiceTestSuite) TestDelete_IgnoresStatus() {
	task := suite.createTask("Completed then deleted")

	done, err := suite.service.Complete(task.ID)
	suite.Require().NoError(err)
	suite.Require().True(done)

	deleted, err := suite.service.Delete(task.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), deleted)
}

func (suite *TaskServiceTestSuite) TestBreakdown_ShortDescription() {
	subTasks, err := suite.service.Breakdown(constants.DefaultUserID, "Report", "short")
	suite.Require().NoError(err)
	assert.Len(suite.T(), subTasks, 2)
}

func (suite *TaskServiceTestSuite) TestBreakdown_LongDescriptionCreatesThree() {
	description := ""
	for i := 0; i < 60; i++ {
		description += "x"
	}

	subTasks, err := suite.service.Breakdown(constants.DefaultUserID, "Report", description)
	suite.Require().NoError(err)
	suite.Require().Len(subTasks, 3)

	today := time.Now().Format(constants.DateLayout)
	for i, task := range subTasks {
		assert.Equal(suite.T(), fmt.Sprintf("Report - 第%d步", i+1), task.Title)
		assert.Equal(suite.T(), "深度工作", task.Category)
		assert.Equal(suite.T(), "重要", task.Priority)
		assert.Equal(suite.T(), today, task.TaskDate)
		assert.Equal(suite.T(), "09:00", task.StartTime)
		assert.Equal(suite.T(), "10:00", task.EndTime)
	}

	// Sub-tasks are real persisted rows, not previews.
	all, err := suite.service.ListAll(constants.DefaultUserID)
	suite.Require().NoError(err)
	assert.Len(suite.T(), all, 3)
}

func (suite *TaskServiceTestSuite) TestStats_EmptyStore() {
	stats, err := suite.service.Stats(constants.DefaultUserID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 0, stats.TotalTasks)
	assert.Equal(suite.T(), 0, stats.CompletedTasks)
	assert.Equal(suite.T(), 0, stats.PendingTasks)
	assert.Equal(suite.T(), 0, stats.WeeklyTotal)
	assert.Equal(suite.T(), float64(0), stats.CompletionRate)
}

func (suite *TaskServiceTestSuite) TestStats_CountsAndCompletionRate() {
	today := time.Now().Format(constants.DateLayout)

	first := suite.newRequest("Today one")
	first.TaskDate = today
	first.Category = "深度工作"
	first.Priority = "紧急"
	second := suite.newRequest("Today two")
	second.TaskDate = today
	second.Category = "社交"
	second.Priority = "普通"

	created, err := suite.service.Create(constants.DefaultUserID, first)
	suite.Require().NoError(err)
	_, err = suite.service.Create(constants.DefaultUserID, second)
	suite.Require().NoError(err)

	done, err := suite.service.Complete(created.ID)
	suite.Require().NoError(err)
	suite.Require().True(done)

	stats, err := suite.service.Stats(constants.DefaultUserID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 2, stats.TotalTasks)
	assert.Equal(suite.T(), 1, stats.CompletedTasks)
	assert.Equal(suite.T(), 1, stats.PendingTasks)
	assert.Equal(suite.T(), 2, stats.WeeklyTotal)
	assert.Equal(suite.T(), 1, stats.WeeklyCompleted)
	assert.Equal(suite.T(), 1, stats.UrgentTasks)
	assert.Equal(suite.T(), 1, stats.NormalTasks)
	assert.Equal(suite.T(), 1, stats.WorkTasks)
	assert.Equal(suite.T(), 1, stats.SocialTasks)
	assert.InDelta(suite.T(), 50.0, stats.CompletionRate, 0.001)
}

func (suite *TaskServiceTestSuite) TestStats_ScopedToUser() {
	today := time.Now().Format(constants.DateLayout)
	mine := suite.newRequest("Mine")
	mine.TaskDate = today

	_, err := suite.service.Create(constants.DefaultUserID, mine)
	suite.Require().NoError(err)
	_, err = suite.service.Create("someone-else", mine)
	suite.Require().NoError(err)

	stats, err := suite.service.Stats(constants.DefaultUserID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, stats.TotalTasks)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
