package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/usecase"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

type courseFixture struct {
	uc            *usecase.CourseUsecase
	repo          *fakeCourseRepo
	notifications *fakeNotificationRepo
	cache         *fakeCourseCache
	images        *fakeImageService
	mail          *fakeMailDispatcher
}

func newCourseFixture() *courseFixture {
	repo := newFakeCourseRepo()
	notifications := &fakeNotificationRepo{}
	cache := newFakeCourseCache()
	images := &fakeImageService{}
	mail := &fakeMailDispatcher{}
	uc := usecase.NewCourseUsecase(repo, notifications, cache, images, mail, nopLogger{}, &fakeUUIDGen{})
	return &courseFixture{uc: uc, repo: repo, notifications: notifications, cache: cache, images: images, mail: mail}
}

func (f *courseFixture) addCourse(id, contentID string) *entity.Course {
	course := &entity.Course{
		ID:   id,
		Name: "Go from Scratch",
		CourseData: []entity.CourseContent{
			{ID: contentID, Title: "Getting Started", Questions: []entity.Question{}},
		},
		Reviews:   []entity.Review{},
		CreatedAt: time.Now(),
	}
	f.repo.courses[id] = course
	return course
}

func owner(courseID string) *entity.User {
	return &entity.User{
		ID:      "buyer-1",
		Name:    "Buyer",
		Email:   "buyer@example.com",
		Courses: []entity.CourseAccess{{CourseID: courseID}},
	}
}

func TestCreateCourseInvalidatesListCache(t *testing.T) {
	f := newCourseFixture()
	require.NoError(t, f.cache.SetAllCourses(context.Background(), []entity.Course{}))

	course, err := f.uc.CreateCourse(context.Background(), usecasecontract.CourseInput{
		Name:        "Go from Scratch",
		Description: "A beginner course",
		Price:       20,
		Thumbnail:   "data:image/png;base64,xyz",
		CourseData:  []entity.CourseContent{{Title: "Intro"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, course.ID)
	assert.NotEmpty(t, course.CourseData[0].ID)
	require.NotNil(t, course.Thumbnail)
	assert.Equal(t, []string{"courses"}, f.images.uploads)
	assert.False(t, f.cache.allSet)
}

func TestGetSingleCourseCachesStripped(t *testing.T) {
	f := newCourseFixture()
	course := f.addCourse("c1", "11111111-1111-1111-1111-111111111111")
	course.CourseData[0].VideoURL = "https://cdn.example/v.mp4"
	course.CourseData[0].Suggestion = "watch twice"

	got, err := f.uc.GetSingleCourse(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got.CourseData, 1)
	assert.Empty(t, got.CourseData[0].VideoURL)
	assert.Empty(t, got.CourseData[0].Suggestion)

	// second read is served from the cache
	reads := f.repo.getCalls
	_, err = f.uc.GetSingleCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, reads, f.repo.getCalls)
}

func TestGetAllCoursesPopulatesAggregate(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	courses, err := f.uc.GetAllCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.True(t, f.cache.allSet)
}

func TestGetCourseContentRequiresOwnership(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	_, err := f.uc.GetCourseContent(context.Background(), owner("other-course"), "c1")
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	content, err := f.uc.GetCourseContent(context.Background(), owner("c1"), "c1")
	require.NoError(t, err)
	assert.Len(t, content, 1)
}

func TestAddQuestionRejectsMalformedIDBeforeStoreRead(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	_, err := f.uc.AddQuestion(context.Background(), owner("c1"), "c1", "bad-content-id", "What is a goroutine?")
	assert.ErrorIs(t, err, usecase.ErrValidation)
	// the malformed id never reaches the store
	assert.Zero(t, f.repo.getCalls)
}

func TestAddQuestionPersistsAndNotifies(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)

	course, err := f.uc.AddQuestion(context.Background(), owner("c1"), "c1", contentID, "What is a goroutine?")
	require.NoError(t, err)
	require.Len(t, course.CourseData[0].Questions, 1)
	assert.Equal(t, "buyer-1", course.CourseData[0].Questions[0].Author.ID)

	require.Len(t, f.notifications.notifications, 1)
	assert.Equal(t, "New Question Received", f.notifications.notifications[0].Title)

	// cache entry was refreshed with the stripped snapshot
	cached, found, _ := f.cache.GetCourse(context.Background(), "c1")
	require.True(t, found)
	assert.Nil(t, cached.CourseData[0].Questions)
}

func TestAddQuestionEmptyText(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)

	_, err := f.uc.AddQuestion(context.Background(), owner("c1"), "c1", contentID, "   ")
	assert.ErrorIs(t, err, usecase.ErrValidation)
	assert.Zero(t, f.repo.saveCalls)
}

func TestAddAnswerBySelfCreatesNotification(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)
	asker := owner("c1")

	course, err := f.uc.AddQuestion(context.Background(), asker, "c1", contentID, "What is a goroutine?")
	require.NoError(t, err)
	questionID := course.CourseData[0].Questions[0].ID

	before := len(f.notifications.notifications)
	_, err = f.uc.AddAnswer(context.Background(), asker, "c1", contentID, questionID, "Figured it out myself")
	require.NoError(t, err)

	// same author answering their own question: in-app notification, no mail
	assert.Len(t, f.notifications.notifications, before+1)
	assert.Equal(t, "New Question Reply Received", f.notifications.notifications[before].Title)
	assert.Empty(t, f.mail.jobs)
}

func TestAddAnswerByOtherSendsMail(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)
	asker := owner("c1")

	course, err := f.uc.AddQuestion(context.Background(), asker, "c1", contentID, "What is a goroutine?")
	require.NoError(t, err)
	questionID := course.CourseData[0].Questions[0].ID

	teacher := &entity.User{ID: "teacher-1", Name: "Teacher", Email: "teacher@example.com"}
	before := len(f.notifications.notifications)
	_, err = f.uc.AddAnswer(context.Background(), teacher, "c1", contentID, questionID, "A lightweight thread")
	require.NoError(t, err)

	// different author: the asker is mailed, no extra in-app notification
	assert.Len(t, f.notifications.notifications, before)
	require.Len(t, f.mail.jobs, 1)
	job := f.mail.jobs[0]
	assert.Equal(t, asker.Email, job.To)
	assert.Equal(t, "Question Reply", job.Subject)
	assert.Equal(t, "question-reply", job.Template)
	assert.Equal(t, "Getting Started", job.Data["title"])
}

func TestAddAnswerMailFailureSurfacesWithoutRollback(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)
	asker := owner("c1")

	course, err := f.uc.AddQuestion(context.Background(), asker, "c1", contentID, "What is a goroutine?")
	require.NoError(t, err)
	questionID := course.CourseData[0].Questions[0].ID

	f.mail.enqueueErr = assert.AnError
	teacher := &entity.User{ID: "teacher-1", Name: "Teacher", Email: "teacher@example.com"}
	_, err = f.uc.AddAnswer(context.Background(), teacher, "c1", contentID, questionID, "A lightweight thread")
	assert.ErrorIs(t, err, usecase.ErrInternal)

	// the reply stays persisted even though the mail failed
	stored, _ := f.repo.GetCourseByID(context.Background(), "c1")
	assert.Len(t, stored.CourseData[0].Questions[0].Replies, 1)
}

func TestAddReviewRecomputesMean(t *testing.T) {
	f := newCourseFixture()
	contentID := "11111111-1111-1111-1111-111111111111"
	f.addCourse("c1", contentID)

	ratings := []float64{4, 5, 3}
	for i, r := range ratings {
		reviewer := owner("c1")
		reviewer.ID = reviewer.ID + string(rune('a'+i))
		_, err := f.uc.AddReview(context.Background(), reviewer, "c1", r, "solid course")
		require.NoError(t, err)
	}

	stored, _ := f.repo.GetCourseByID(context.Background(), "c1")
	assert.InDelta(t, 4.0, stored.Ratings, 1e-9)
	assert.Len(t, stored.Reviews, 3)
}

func TestAddReviewRequiresOwnership(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	_, err := f.uc.AddReview(context.Background(), owner("other"), "c1", 5, "great")
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestAddReviewRatingOutOfRange(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	_, err := f.uc.AddReview(context.Background(), owner("c1"), "c1", 7, "off the chart")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAddReviewReply(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")
	_, err := f.uc.AddReview(context.Background(), owner("c1"), "c1", 5, "great")
	require.NoError(t, err)

	stored, _ := f.repo.GetCourseByID(context.Background(), "c1")
	reviewID := stored.Reviews[0].ID

	admin := &entity.User{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: entity.UserRoleAdmin}
	course, err := f.uc.AddReviewReply(context.Background(), admin, "c1", reviewID, "thanks for the feedback")
	require.NoError(t, err)
	require.Len(t, course.Reviews[0].Replies, 1)
	assert.Equal(t, "admin-1", course.Reviews[0].Replies[0].Author.ID)
}

func TestDeleteCourseDropsCacheEntries(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")

	// warm both cache entries
	_, err := f.uc.GetSingleCourse(context.Background(), "c1")
	require.NoError(t, err)
	_, err = f.uc.GetAllCourses(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteCourse(context.Background(), "c1"))

	_, found, _ := f.cache.GetCourse(context.Background(), "c1")
	assert.False(t, found)
	assert.False(t, f.cache.allSet)

	// a fresh read now misses everywhere
	_, err = f.uc.GetSingleCourse(context.Background(), "c1")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestEditCourseRefreshesCaches(t *testing.T) {
	f := newCourseFixture()
	f.addCourse("c1", "11111111-1111-1111-1111-111111111111")
	require.NoError(t, f.cache.SetAllCourses(context.Background(), []entity.Course{}))

	updated, err := f.uc.EditCourse(context.Background(), "c1", usecasecontract.CourseInput{Name: "Go, Revised"})
	require.NoError(t, err)
	assert.Equal(t, "Go, Revised", updated.Name)

	cached, found, _ := f.cache.GetCourse(context.Background(), "c1")
	require.True(t, found)
	assert.Equal(t, "Go, Revised", cached.Name)
	assert.False(t, f.cache.allSet)
}
