package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repoMongo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) Repository {
	return &repoMongo{coll: db.Collection("appointments")}
}

func (r *repoMongo) Insert(ctx context.Context, appt *Appointment) error {
	appt.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *repoMongo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var appt Appointment
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

func (r *repoMongo) List(ctx context.Context) ([]*Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledTime", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	appts := []*Appointment{}
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

func (r *repoMongo) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledTime", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list appointments by patient: %w", err)
	}

	appts := []*Appointment{}
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

func (r *repoMongo) UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (*Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt Appointment
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return &appt, nil
}

func (r *repoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete appointments: %w", err)
	}
	return nil
}
