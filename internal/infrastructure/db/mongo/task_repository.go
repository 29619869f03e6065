package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

const taskCollection = "tasks"

type MongoTaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	OwnerID     string             `bson:"owner_id"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	doc := mongoTask{
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt.Unix(),
		UpdatedAt:   task.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoTaskRepository) find(ctx context.Context, filter bson.M) ([]*domain.Task, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*domain.Task
	for cursor.Next(ctx) {
		var mt mongoTask
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"status":      string(task.Status),
		"updated_at":  task.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID}); err != nil {
		return fmt.Errorf("delete tasks by owner: %w", err)
	}
	return nil
}

func (mt *mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Status:      domain.TaskStatus(mt.Status),
		OwnerID:     mt.OwnerID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}
