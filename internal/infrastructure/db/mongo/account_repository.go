package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

const accountCollection = "users"

type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

// EnsureIndexes creates the unique email index. This index, not the
// pre-insert lookup, is what makes concurrent duplicate registrations
// impossible.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	Department   string             `bson:"department,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	IsConfirmed  bool               `bson:"is_confirmed"`
	ConfirmOTP   string             `bson:"confirm_otp,omitempty"`
	OTPTries     int                `bson:"otp_tries"`
	LastLogin    int64              `bson:"last_login,omitempty"`
	LoginCount   int                `bson:"login_count"`
	Status       bool               `bson:"status"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		Phone:        account.Phone,
		Department:   account.Department,
		PasswordHash: account.PasswordHash,
		IsConfirmed:  account.IsConfirmed,
		ConfirmOTP:   account.ConfirmOTP,
		OTPTries:     account.OTPTries,
		LoginCount:   account.LoginCount,
		Status:       account.Status,
		CreatedAt:    account.CreatedAt.Unix(),
		UpdatedAt:    account.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAccountRepository) UpdateByEmail(ctx context.Context, email string, patch ports.AccountPatch) error {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	unset := bson.M{}

	if patch.IsConfirmed != nil {
		set["is_confirmed"] = *patch.IsConfirmed
	}
	if patch.ConfirmOTP != nil {
		if *patch.ConfirmOTP == "" {
			unset["confirm_otp"] = ""
		} else {
			set["confirm_otp"] = *patch.ConfirmOTP
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *MongoAccountRepository) RecordLogin(ctx context.Context, email string, at time.Time) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"last_login": at.Unix()},
		"$inc": bson.M{"login_count": 1},
	})
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

func (ma *mongoAccount) toDomain() *domain.Account {
	account := &domain.Account{
		ID:           ma.ID.Hex(),
		FirstName:    ma.FirstName,
		LastName:     ma.LastName,
		Email:        ma.Email,
		Phone:        ma.Phone,
		Department:   ma.Department,
		PasswordHash: ma.PasswordHash,
		IsConfirmed:  ma.IsConfirmed,
		ConfirmOTP:   ma.ConfirmOTP,
		OTPTries:     ma.OTPTries,
		LoginCount:   ma.LoginCount,
		Status:       ma.Status,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
	if ma.LastLogin != 0 {
		t := unixToTime(ma.LastLogin)
		account.LastLogin = &t
	}
	return account
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
