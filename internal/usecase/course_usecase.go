package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// CourseUsecase implements catalog reads and the nested mutation engine. Every
// nested mutation follows the same guarded sequence: validate ids, load the
// course, resolve the nested target, append a validated sub-document, persist
// the whole document in one write, emit the side effects, refresh the cache.
type CourseUsecase struct {
	courseRepo       contract.ICourseRepository
	notificationRepo contract.INotificationRepository
	courseCache      contract.ICourseCache
	images           contract.IImageService
	mail             contract.IMailDispatcher
	logger           usecasecontract.IAppLogger
	uuidGen          contract.IUUIDGenerator
}

// NewCourseUsecase creates a new CourseUsecase instance.
func NewCourseUsecase(
	courseRepo contract.ICourseRepository,
	notificationRepo contract.INotificationRepository,
	courseCache contract.ICourseCache,
	images contract.IImageService,
	mail contract.IMailDispatcher,
	logger usecasecontract.IAppLogger,
	uuidGen contract.IUUIDGenerator,
) *CourseUsecase {
	return &CourseUsecase{
		courseRepo:       courseRepo,
		notificationRepo: notificationRepo,
		courseCache:      courseCache,
		images:           images,
		mail:             mail,
		logger:           logger,
		uuidGen:          uuidGen,
	}
}

// check if CourseUsecase implements the ICourseUseCase
var _ usecasecontract.ICourseUseCase = (*CourseUsecase)(nil)

// CreateCourse persists a new course, uploading the thumbnail first when one
// is supplied, and invalidates the aggregate cache entry.
func (uc *CourseUsecase) CreateCourse(ctx context.Context, input usecasecontract.CourseInput) (*entity.Course, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: course name is required", ErrValidation)
	}

	now := time.Now()
	course := &entity.Course{
		ID:             uc.uuidGen.NewUUID(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		EstimatedPrice: input.EstimatedPrice,
		Level:          input.Level,
		Tags:           input.Tags,
		CourseData:     input.CourseData,
		Reviews:        []entity.Review{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i := range course.CourseData {
		if course.CourseData[i].ID == "" {
			course.CourseData[i].ID = uc.uuidGen.NewUUID()
		}
		if course.CourseData[i].Questions == nil {
			course.CourseData[i].Questions = []entity.Question{}
		}
	}

	if input.Thumbnail != "" {
		uploaded, err := uc.images.Upload(ctx, input.Thumbnail, "courses")
		if err != nil {
			uc.logger.Errorf("failed to upload course thumbnail: %v", err)
			return nil, fmt.Errorf("%w: thumbnail upload failed", ErrInternal)
		}
		course.Thumbnail = &entity.Avatar{PublicID: uploaded.PublicID, URL: uploaded.URL}
	}

	if err := uc.courseRepo.CreateCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to create course: %v", err)
		return nil, ErrInternal
	}

	if err := uc.courseCache.InvalidateAllCourses(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate course list cache: %v", err)
	}
	return course, nil
}

// EditCourse applies a partial update, replaces the thumbnail when a new one
// is supplied, refreshes the per-course cache entry and invalidates the
// aggregate entry.
func (uc *CourseUsecase) EditCourse(ctx context.Context, courseID string, input usecasecontract.CourseInput) (*entity.Course, error) {
	existing, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s for edit: %v", courseID, err)
		return nil, ErrInternal
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.Price != 0 {
		fields["price"] = input.Price
	}
	if input.EstimatedPrice != 0 {
		fields["estimated_price"] = input.EstimatedPrice
	}
	if input.Level != "" {
		fields["level"] = input.Level
	}
	if len(input.Tags) > 0 {
		fields["tags"] = input.Tags
	}
	if len(input.CourseData) > 0 {
		for i := range input.CourseData {
			if input.CourseData[i].ID == "" {
				input.CourseData[i].ID = uc.uuidGen.NewUUID()
			}
			if input.CourseData[i].Questions == nil {
				input.CourseData[i].Questions = []entity.Question{}
			}
		}
		fields["course_data"] = input.CourseData
	}
	if input.Thumbnail != "" {
		if existing.Thumbnail != nil && existing.Thumbnail.PublicID != "" {
			if err := uc.images.Destroy(ctx, existing.Thumbnail.PublicID); err != nil {
				uc.logger.Warnf("failed to destroy old thumbnail %s: %v", existing.Thumbnail.PublicID, err)
			}
		}
		uploaded, err := uc.images.Upload(ctx, input.Thumbnail, "courses")
		if err != nil {
			uc.logger.Errorf("failed to upload course thumbnail: %v", err)
			return nil, fmt.Errorf("%w: thumbnail upload failed", ErrInternal)
		}
		fields["thumbnail"] = &entity.Avatar{PublicID: uploaded.PublicID, URL: uploaded.URL}
	}

	updated, err := uc.courseRepo.UpdateCourseFields(ctx, courseID, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to update course %s: %v", courseID, err)
		return nil, ErrInternal
	}

	uc.refreshCourseCache(ctx, updated)
	if err := uc.courseCache.InvalidateAllCourses(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate course list cache: %v", err)
	}
	return updated, nil
}

// GetSingleCourse serves the stripped course snapshot, cache first. A miss
// falls through to the store and populates the cache with the entity TTL.
func (uc *CourseUsecase) GetSingleCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	if cached, found, err := uc.courseCache.GetCourse(ctx, courseID); err == nil && found {
		return cached, nil
	} else if err != nil {
		uc.logger.Warnf("course cache read failed for %s: %v", courseID, err)
	}

	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, ErrInternal
	}

	stripped := course.Stripped()
	if err := uc.courseCache.SetCourse(ctx, stripped); err != nil {
		uc.logger.Warnf("failed to cache course %s: %v", courseID, err)
	}
	return stripped, nil
}

// GetAllCourses serves the aggregate list, cache first. The cache entry has no
// expiry and is only ever refreshed here or invalidated by writes.
func (uc *CourseUsecase) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	if cached, found, err := uc.courseCache.GetAllCourses(ctx); err == nil && found {
		return cached, nil
	} else if err != nil {
		uc.logger.Warnf("course list cache read failed: %v", err)
	}

	courses, err := uc.courseRepo.GetAllCoursesStripped(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list courses: %v", err)
		return nil, ErrInternal
	}
	if err := uc.courseCache.SetAllCourses(ctx, courses); err != nil {
		uc.logger.Warnf("failed to cache course list: %v", err)
	}
	return courses, nil
}

// GetCourseContent returns the full content of a course the actor owns.
func (uc *CourseUsecase) GetCourseContent(ctx context.Context, actor *entity.User, courseID string) ([]entity.CourseContent, error) {
	if actor == nil || !actor.OwnsCourse(courseID) {
		return nil, fmt.Errorf("%w: you are not eligible to access this course", ErrForbidden)
	}

	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, ErrInternal
	}
	return course.CourseData, nil
}

// AddQuestion appends a question to a content section. The content id is
// checked for well-formedness before any store read happens.
func (uc *CourseUsecase) AddQuestion(ctx context.Context, actor *entity.User, courseID, contentID, text string) (*entity.Course, error) {
	if !uc.uuidGen.IsValid(contentID) {
		return nil, fmt.Errorf("%w: invalid content id", ErrValidation)
	}

	course, content, err := uc.loadContent(ctx, courseID, contentID)
	if err != nil {
		return nil, err
	}

	question, err := entity.NewQuestion(uc.uuidGen.NewUUID(), actor.Ref(), text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	content.Questions = append(content.Questions, question)

	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to save course %s after question add: %v", courseID, err)
		return nil, ErrInternal
	}

	uc.notify(ctx, actor.ID, "New Question Received",
		fmt.Sprintf("You have a new question in %s", content.Title))
	uc.refreshCourseCache(ctx, course.Stripped())
	return course, nil
}

// AddAnswer appends a reply to a question. When the answering actor is the
// question's own author an in-app notification is created; otherwise the
// author is mailed instead. The asymmetry is deliberate.
func (uc *CourseUsecase) AddAnswer(ctx context.Context, actor *entity.User, courseID, contentID, questionID, text string) (*entity.Course, error) {
	if !uc.uuidGen.IsValid(contentID) {
		return nil, fmt.Errorf("%w: invalid content id", ErrValidation)
	}

	course, content, err := uc.loadContent(ctx, courseID, contentID)
	if err != nil {
		return nil, err
	}
	question := content.QuestionByID(questionID)
	if question == nil {
		return nil, fmt.Errorf("%w: question not found", ErrNotFound)
	}

	reply, err := entity.NewReply(uc.uuidGen.NewUUID(), actor.Ref(), text, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	question.Replies = append(question.Replies, reply)

	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to save course %s after answer add: %v", courseID, err)
		return nil, ErrInternal
	}

	if actor.ID == question.Author.ID {
		uc.notify(ctx, actor.ID, "New Question Reply Received",
			fmt.Sprintf("You have a new question reply in %s", content.Title))
	} else {
		job := contract.MailJob{
			To:       question.Author.Email,
			Subject:  "Question Reply",
			Template: "question-reply",
			Data:     map[string]any{"name": question.Author.Name, "title": content.Title},
		}
		if err := uc.mail.Enqueue(ctx, job); err != nil {
			uc.logger.Errorf("failed to enqueue question-reply mail: %v", err)
			// the document mutation is already persisted; surface the mail
			// failure on its own without rolling anything back
			return nil, fmt.Errorf("%w: could not send reply notification mail", ErrInternal)
		}
	}

	uc.refreshCourseCache(ctx, course.Stripped())
	return course, nil
}

// AddReview appends a review and recomputes the denormalized rating mean over
// the full list before persisting.
func (uc *CourseUsecase) AddReview(ctx context.Context, actor *entity.User, courseID string, rating float64, comment string) (*entity.Course, error) {
	if actor == nil || !actor.OwnsCourse(courseID) {
		return nil, fmt.Errorf("%w: you are not eligible to access this course", ErrForbidden)
	}

	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, ErrInternal
	}

	review, err := entity.NewReview(uc.uuidGen.NewUUID(), actor.Ref(), rating, comment, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	course.Reviews = append(course.Reviews, review)
	course.RecomputeRatings()

	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to save course %s after review add: %v", courseID, err)
		return nil, ErrInternal
	}

	uc.refreshCourseCache(ctx, course.Stripped())
	uc.notify(ctx, actor.ID, "New Review Received",
		fmt.Sprintf("%s has given a review in %s", actor.Name, course.Name))
	return course, nil
}

// AddReviewReply appends a reply to an existing review.
func (uc *CourseUsecase) AddReviewReply(ctx context.Context, actor *entity.User, courseID, reviewID, text string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, ErrInternal
	}

	review := course.ReviewByID(reviewID)
	if review == nil {
		return nil, fmt.Errorf("%w: review not found", ErrNotFound)
	}

	reply, err := entity.NewReply(uc.uuidGen.NewUUID(), actor.Ref(), text, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	review.Replies = append(review.Replies, reply)

	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to save course %s after review reply: %v", courseID, err)
		return nil, ErrInternal
	}

	uc.refreshCourseCache(ctx, course.Stripped())
	return course, nil
}

// GetAdminCourses returns every course in full, newest first.
func (uc *CourseUsecase) GetAdminCourses(ctx context.Context) ([]entity.Course, error) {
	courses, err := uc.courseRepo.GetAllCourses(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list courses: %v", err)
		return nil, ErrInternal
	}
	return courses, nil
}

// DeleteCourse removes the document, its cache entry and the aggregate entry,
// synchronously, before the caller responds.
func (uc *CourseUsecase) DeleteCourse(ctx context.Context, courseID string) error {
	if _, err := uc.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s for deletion: %v", courseID, err)
		return ErrInternal
	}

	if err := uc.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		uc.logger.Errorf("failed to delete course %s: %v", courseID, err)
		return ErrInternal
	}
	if err := uc.courseCache.DeleteCourse(ctx, courseID); err != nil {
		uc.logger.Errorf("failed to delete course cache entry %s: %v", courseID, err)
		return ErrInternal
	}
	if err := uc.courseCache.InvalidateAllCourses(ctx); err != nil {
		uc.logger.Errorf("failed to invalidate course list cache: %v", err)
		return ErrInternal
	}
	return nil
}

// loadContent loads a course and resolves a content section inside it.
func (uc *CourseUsecase) loadContent(ctx context.Context, courseID, contentID string) (*entity.Course, *entity.CourseContent, error) {
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: course not found", ErrNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, nil, ErrInternal
	}
	content := course.Content(contentID)
	if content == nil {
		return nil, nil, fmt.Errorf("%w: content not found in course", ErrNotFound)
	}
	return course, content, nil
}

// notify records an in-app notification; failures are logged, not surfaced,
// since the document mutation already succeeded.
func (uc *CourseUsecase) notify(ctx context.Context, userID, title, message string) {
	n := &entity.Notification{
		ID:        uc.uuidGen.NewUUID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Status:    entity.NotificationUnread,
		CreatedAt: time.Now(),
	}
	if err := uc.notificationRepo.CreateNotification(ctx, n); err != nil {
		uc.logger.Errorf("failed to create notification for user %s: %v", userID, err)
	}
}

// refreshCourseCache overwrites the per-course entry with the given snapshot.
func (uc *CourseUsecase) refreshCourseCache(ctx context.Context, course *entity.Course) {
	if err := uc.courseCache.SetCourse(ctx, course); err != nil {
		uc.logger.Warnf("failed to refresh course cache %s: %v", course.ID, err)
	}
}
