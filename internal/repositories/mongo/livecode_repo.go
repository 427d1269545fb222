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

type LiveCodeRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewLiveCodeRepo(db *mongo.Database) *LiveCodeRepo {
	col := db.Collection("liveCodeSync")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interviewId", Value: 1}, {Key: "seq", Value: -1}},
	})
	return &LiveCodeRepo{col: col, counters: db.Collection("counters")}
}

// nextSeq allocates the next per-interview sequence number from the
// counters collection. The $inc upsert keeps numbering monotonic under
// concurrent appends regardless of instance clocks.
func (r *LiveCodeRepo) nextSeq(ctx context.Context, interviewID string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "livecode:" + interviewID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *LiveCodeRepo) Append(ctx context.Context, event *models.LiveCodeEvent) error {
	seq, err := r.nextSeq(ctx, event.InterviewID)
	if err != nil {
		return err
	}
	event.Seq = seq
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.LastUpdated.IsZero() {
		event.LastUpdated = time.Now().UTC()
	}
	_, err = r.col.InsertOne(ctx, event)
	return err
}

func (r *LiveCodeRepo) Latest(ctx context.Context, interviewID string) (*models.LiveCodeEvent, error) {
	var ev models.LiveCodeEvent
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}})
	err := r.col.FindOne(ctx, bson.M{"interviewId": interviewID}, opts).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
