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

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

var _ contract.INotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) CreateNotification(ctx context.Context, n *entity.Notification) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) GetNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	var n entity.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) GetAllNotifications(ctx context.Context) ([]entity.Notification, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) UpdateNotification(ctx context.Context, n *entity.Notification) error {
	update := bson.M{"$set": bson.M{"status": n.Status}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": n.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":     entity.NotificationRead,
		"created_at": bson.M{"$lt": cutoff},
	}
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *NotificationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lt": to}}
	return r.collection.CountDocuments(ctx, filter)
}
