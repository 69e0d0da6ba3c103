package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
)

type CourseRepository struct {
	collection *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

var _ contract.ICourseRepository = (*CourseRepository)(nil)

func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	_, err := r.collection.InsertOne(ctx, course)
	return err
}

func (r *CourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) GetAllCoursesStripped(ctx context.Context) ([]entity.Course, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetProjection(bson.M{
			"course_data.video_url":  0,
			"course_data.links":      0,
			"course_data.suggestion": 0,
			"course_data.questions":  0,
		})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) UpdateCourseFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Course, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNotFound
	}
	return r.GetCourseByID(ctx, id)
}

func (r *CourseRepository) SaveCourse(ctx context.Context, course *entity.Course) error {
	course.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	return r.collection.CountDocuments(ctx, filter)
}
