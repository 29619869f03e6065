package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

const auditCollection = "audit_events"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Kind       string `bson:"kind"`
	Username   string `bson:"username"`
	Detail     string `bson:"detail,omitempty"`
	OccurredAt int64  `bson:"occurred_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event ports.AuditEvent) error {
	doc := mongoAuditEvent{
		Kind:       event.Kind,
		Username:   event.Username,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
