package repositories

import (
	"context"
	"errors"

	"arunoday-portal/internal/adapters/persistence/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, shared with the mysql table names
const (
	AdminsCollection   = "admins"
	StudentsCollection = "students"
	PaymentsCollection = "payments"
	ContactsCollection = "contacts"
)

// NewMongoStore builds a Store backed by a MongoDB database
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Admins:   &mongoAdminRepository{coll: db.Collection(AdminsCollection)},
		Students: &mongoStudentRepository{coll: db.Collection(StudentsCollection)},
		Payments: &mongoPaymentRepository{coll: db.Collection(PaymentsCollection)},
		Contacts: &mongoContactRepository{coll: db.Collection(ContactsCollection)},
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		Close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

// EnsureMongoIndexes creates the unique and lookup indexes the repositories rely on
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		AdminsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		StudentsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "roll_number", Value: 1}}, Options: unique},
		},
		PaymentsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "student_id", Value: 1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// translateMongoError maps driver errors onto the store-agnostic errors
func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

// findPage runs a paginated find and decodes into out, returning the total count
func findPage(ctx context.Context, coll *mongo.Collection, filter bson.M, sortKey string, offset, limit int, out interface{}) (int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	if err := cursor.All(ctx, out); err != nil {
		return 0, err
	}
	return total, nil
}

// mongoAdminRepository implements AdminRepository
type mongoAdminRepository struct {
	coll *mongo.Collection
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	_, err := r.coll.InsertOne(ctx, admin)
	return translateMongoError(err)
}

func (r *mongoAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, translateMongoError(err)
	}
	return &admin, nil
}

// mongoStudentRepository implements StudentRepository
type mongoStudentRepository struct {
	coll *mongo.Collection
}

func (r *mongoStudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.coll.InsertOne(ctx, student)
	return translateMongoError(err)
}

func (r *mongoStudentRepository) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var student models.Student
	if err := r.coll.FindOne(ctx, filter).Decode(&student); err != nil {
		return nil, translateMongoError(err)
	}
	return &student, nil
}

func (r *mongoStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoStudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"roll_number": rollNumber})
}

func (r *mongoStudentRepository) FindByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"roll_number": rollNumber},
	}})
}

func (r *mongoStudentRepository) List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	students := []*models.Student{}
	total, err := findPage(ctx, r.coll, bson.M{}, "created_at", offset, limit, &students)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *mongoStudentRepository) Update(ctx context.Context, id string, fields Fields) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStudentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// mongoPaymentRepository implements PaymentRepository
type mongoPaymentRepository struct {
	coll *mongo.Collection
}

func (r *mongoPaymentRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	_, err := r.coll.InsertOne(ctx, payment)
	return translateMongoError(err)
}

func (r *mongoPaymentRepository) List(ctx context.Context, offset, limit int) ([]*models.FeePayment, int64, error) {
	payments := []*models.FeePayment{}
	total, err := findPage(ctx, r.coll, bson.M{}, "paid_at", offset, limit, &payments)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *mongoPaymentRepository) ListByStudentID(ctx context.Context, studentID string, offset, limit int) ([]*models.FeePayment, int64, error) {
	payments := []*models.FeePayment{}
	total, err := findPage(ctx, r.coll, bson.M{"student_id": studentID}, "paid_at", offset, limit, &payments)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// mongoContactRepository implements ContactRepository
type mongoContactRepository struct {
	coll *mongo.Collection
}

func (r *mongoContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	_, err := r.coll.InsertOne(ctx, contact)
	return translateMongoError(err)
}
