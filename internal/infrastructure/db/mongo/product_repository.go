package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercadillo/storefront/internal/core/domain"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Ref       string             `bson:"ref"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	Stock     int                `bson:"stock"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (d *productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:        d.ID.Hex(),
		Ref:       d.Ref,
		Name:      d.Name,
		Price:     d.Price,
		Stock:     d.Stock,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := productDoc{
		Ref:       product.Ref,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt.Unix(),
		UpdatedAt: product.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateProduct
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProductRepository) FindByRef(ctx context.Context, ref string) (*domain.Product, error) {
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"ref": ref}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "ref", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":       product.Name,
		"price":      product.Price,
		"stock":      product.Stock,
		"updated_at": product.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"ref": product.Ref}, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return r.FindByRef(ctx, product.Ref)
}

func (r *ProductRepository) Delete(ctx context.Context, ref string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"ref": ref})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
