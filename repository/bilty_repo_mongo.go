package repository

import (
	"context"
	"errors"

	"biltyledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "biltyledger"

type MongoBiltyRepo struct {
	DB *mongo.Client
}

func NewMongoBiltyRepo(db *mongo.Client) *MongoBiltyRepo {
	return &MongoBiltyRepo{DB: db}
}

func (r *MongoBiltyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("bilty")
}

// EnsureIndexes creates the unique serial-number index. Called once at
// startup so duplicate creates fail the same way as on Postgres.
func (r *MongoBiltyRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bilty_sl_no", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// nextID draws the next numeric id from the counters collection, keeping
// ids strictly increasing like the Postgres sequence.
func (r *MongoBiltyRepo) nextID(ctx context.Context) (int64, error) {
	counters := r.DB.Database(mongoDatabase).Collection("counters")
	res := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "bilty"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *MongoBiltyRepo) ListBilty() ([]*models.Bilty, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Bilty
	for cur.Next(ctx) {
		var b models.Bilty
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		result = append(result, &b)
	}
	return result, cur.Err()
}

func (r *MongoBiltyRepo) GetBiltyByID(id int64) (*models.Bilty, error) {
	var b models.Bilty
	err := r.collection().FindOne(context.Background(), bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoBiltyRepo) CreateBilty(bilty *models.Bilty) error {
	ctx := context.Background()

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	bilty.ID = id

	_, err = r.collection().InsertOne(ctx, bilty)
	if mongo.IsDuplicateKeyError(err) {
		return &ConflictError{Field: "bilty_sl_no"}
	}
	return err
}

func (r *MongoBiltyRepo) UpdateBilty(bilty *models.Bilty) error {
	res, err := r.collection().ReplaceOne(context.Background(),
		bson.M{"_id": bilty.ID}, bilty)
	if mongo.IsDuplicateKeyError(err) {
		return &ConflictError{Field: "bilty_sl_no"}
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBiltyRepo) DeleteBilty(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
