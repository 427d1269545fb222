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

type QuestionRepo struct{ col *mongo.Collection }

func NewQuestionRepo(db *mongo.Database) *QuestionRepo {
	col := db.Collection("customQuestions")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interviewId", Value: 1}},
	})
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "interviewerId", Value: 1}},
	})
	return &QuestionRepo{col: col}
}

func (r *QuestionRepo) Create(ctx context.Context, question *models.CustomQuestion) error {
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	_, err := r.col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepo) GetByID(ctx context.Context, id string) (*models.CustomQuestion, error) {
	var q models.CustomQuestion
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepo) ListByInterview(ctx context.Context, interviewID string) ([]models.CustomQuestion, error) {
	cur, err := r.col.Find(ctx, bson.M{"interviewId": interviewID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.CustomQuestion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *QuestionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	return int(n), err
}

type MockInterviewRepo struct{ col *mongo.Collection }

func NewMockInterviewRepo(db *mongo.Database) *MockInterviewRepo {
	col := db.Collection("mockInterviews")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return &MockInterviewRepo{col: col}
}

func (r *MockInterviewRepo) Create(ctx context.Context, interview *models.MockInterview) error {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, interview)
	return err
}

func (r *MockInterviewRepo) GetByID(ctx context.Context, id string) (*models.MockInterview, error) {
	var m models.MockInterview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MockInterviewRepo) list(ctx context.Context, filter bson.M) ([]models.MockInterview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.MockInterview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MockInterviewRepo) ListByUser(ctx context.Context, userID string) ([]models.MockInterview, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *MockInterviewRepo) ListByUserAndStatus(ctx context.Context, userID string, status models.MockInterviewStatus) ([]models.MockInterview, error) {
	return r.list(ctx, bson.M{"userId": userID, "status": status})
}

func (r *MockInterviewRepo) ListAll(ctx context.Context) ([]models.MockInterview, error) {
	return r.list(ctx, bson.M{})
}

func (r *MockInterviewRepo) Update(ctx context.Context, interview *models.MockInterview) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": interview.ID}, interview)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

type ProfileRepo struct{ col *mongo.Collection }

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	col := db.Collection("userSkillsProfile")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "industry", Value: 1}},
	})
	return &ProfileRepo{col: col}
}

func (r *ProfileRepo) Upsert(ctx context.Context, profile *models.SkillsProfile) (*models.SkillsProfile, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"industry":          profile.Industry,
			"yearsOfExperience": profile.YearsOfExperience,
			"skills":            profile.Skills,
			"bio":               profile.Bio,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{
			"_id":       uuid.New().String(),
			"userId":    profile.UserID,
			"createdAt": now,
		},
	}
	var stored models.SkillsProfile
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"userId": profile.UserID}, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ProfileRepo) GetByUser(ctx context.Context, userID string) (*models.SkillsProfile, error) {
	var p models.SkillsProfile
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) ListByIndustry(ctx context.Context, industry string) ([]models.SkillsProfile, error) {
	cur, err := r.col.Find(ctx, bson.M{"industry": industry})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.SkillsProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ResumeRepo struct{ col *mongo.Collection }

func NewResumeRepo(db *mongo.Database) *ResumeRepo {
	col := db.Collection("resumes")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return &ResumeRepo{col: col}
}

func (r *ResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = now
	}
	if resume.UpdatedAt.IsZero() {
		resume.UpdatedAt = now
	}
	_, err := r.col.InsertOne(ctx, resume)
	return err
}

func (r *ResumeRepo) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	var res models.Resume
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResumeRepo) ListByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Resume
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ResumeRepo) Update(ctx context.Context, resume *models.Resume) error {
	resume.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": resume.ID}, resume)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ResumeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
