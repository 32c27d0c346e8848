package patient

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repoMongo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) Repository {
	return &repoMongo{coll: db.Collection("patients")}
}

func (r *repoMongo) Insert(ctx context.Context, p *Patient) error {
	p.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *repoMongo) GetByID(ctx context.Context, id string) (*Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var p Patient
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

func (r *repoMongo) List(ctx context.Context) ([]*Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	patients := []*Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (r *repoMongo) Search(ctx context.Context, query string) ([]*Patient, error) {
	// Substring match, so the query text is quoted before it reaches the
	// regex engine. An empty query matches every record.
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"firstName": re},
		{"lastName": re},
		{"hospitalId": re},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}

	patients := []*Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (r *repoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete patients: %w", err)
	}
	return nil
}
