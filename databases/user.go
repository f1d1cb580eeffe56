package databases

//go generate: mockery --name UserDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stressbuster/stressbuster-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	InsertOne(ctx context.Context, u models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = NewID()
	}
	if _, err := u.db.Collection(userName).InsertOne(ctx, user); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (u *userDatabase) FindByID(ctx context.Context, id string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"_id": id})
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u *userDatabase) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user := &models.User{}
	if err := u.db.Collection(userName).FindOne(ctx, filter).Decode(user); err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (u *userDatabase) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	filter := bson.M{"$or": []bson.M{{"email": email}, {"username": username}}}
	n, err := u.db.Collection(userName).CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProfile overwrites the editable fields. Empty strings clear a field, the
// preferred language falls back to en.
func (u *userDatabase) UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (*models.User, error) {
	lang := p.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	update := set(bson.M{
		"fullName":          p.FullName,
		"phone":             p.Phone,
		"age":               p.Age,
		"gender":            p.Gender,
		"preferredLanguage": lang,
	})
	res, err := u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, translateError(err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return u.FindByID(ctx, id)
}

func (u *userDatabase) TouchLastLogin(ctx context.Context, id string) error {
	_, err := u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": id}, set(bson.M{"lastLogin": now()}))
	return translateError(err)
}
