package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
)

type InterviewRepo struct{ col *mongo.Collection }

func NewInterviewRepo(db *mongo.Database) *InterviewRepo {
	col := db.Collection("interviews")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "candidateId", Value: 1}},
	})
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "streamCallId", Value: 1}},
	})
	return &InterviewRepo{col: col}
}

func (r *InterviewRepo) Create(ctx context.Context, interview *models.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	_, err := r.col.InsertOne(ctx, interview)
	return err
}

func (r *InterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepo) GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error) {
	var iv models.Interview
	err := r.col.FindOne(ctx, bson.M{"streamCallId": streamCallID}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Interview, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Interview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	return r.find(ctx, bson.M{})
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	return r.find(ctx, bson.M{"candidateId": candidateID})
}

func (r *InterviewRepo) ListRecent(ctx context.Context, limit int) ([]models.Interview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}}).SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *InterviewRepo) UpdateStatus(ctx context.Context, id string, status models.InterviewStatus) (*models.Interview, error) {
	set := bson.M{"status": status}
	if status == models.StatusCompleted {
		set["endTime"] = time.Now().UTC()
	}
	var updated models.Interview
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

type CommentRepo struct{ col *mongo.Collection }

func NewCommentRepo(db *mongo.Database) *CommentRepo {
	col := db.Collection("comments")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interviewId", Value: 1}},
	})
	return &CommentRepo{col: col}
}

func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepo) list(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Comment, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Comment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommentRepo) ListByInterview(ctx context.Context, interviewID string) ([]models.Comment, error) {
	return r.list(ctx, bson.M{"interviewId": interviewID})
}

func (r *CommentRepo) ListRecent(ctx context.Context, limit int) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit))
	return r.list(ctx, bson.M{}, opts)
}
